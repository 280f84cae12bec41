// Dev utility: generate a synthetic JSONL roster snapshot for trying out
// `buyerscope analyze` without provider access.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/rsamoilov/buyerscope/internal/model"
)

var titles = []string{
	"Chief Revenue Officer",
	"VP of Sales",
	"VP of Marketing",
	"Director of Sales Operations",
	"Director of Revenue Operations",
	"Sales Manager",
	"Marketing Manager",
	"Revenue Operations Analyst",
	"Account Executive",
	"Sales Development Representative",
	"Customer Success Manager",
	"Software Engineer",
	"Engineering Manager",
	"VP, Legal & Compliance",
	"Interim Director of Sales",
	"Chief Financial Officer",
}

var countries = []string{"US", "US", "US", "GB", "DE", "NL"}

type snapshotLine struct {
	CompanyID string `json:"company_id"`
	model.PersonCandidate
}

func main() {
	companyID := flag.String("company", "acme-corp", "company ID to tag candidates with")
	count := flag.Int("count", 25, "number of candidates to generate")
	seed := flag.Int64("seed", 42, "random seed (fixed for reproducible snapshots)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	enc := json.NewEncoder(os.Stdout)

	for i := 0; i < *count; i++ {
		line := snapshotLine{
			CompanyID: *companyID,
			PersonCandidate: model.PersonCandidate{
				FullName:         fmt.Sprintf("Person %02d", i),
				Title:            titles[rng.Intn(len(titles))],
				ConnectionsCount: rng.Intn(5000),
				FollowersCount:   rng.Intn(2000),
				LocationCountry:  countries[rng.Intn(len(countries))],
				ProviderID:       fmt.Sprintf("%s-%04d", *companyID, i),
			},
		}
		if err := enc.Encode(line); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	}
}
