// Package plans holds the static DataV pricing table and the upload limits
// shared by every plan.
package plans

// DefaultID is the plan assigned at registration when none is chosen.
const DefaultID = "free-trial"

// Unlimited marks a plan without an upload quota.
const Unlimited = -1

// Plan is a priced tier. Price is in whole US dollars per month.
type Plan struct {
	ID       string
	Name     string
	Uploads  int
	Features []string
	Price    int
}

// UnlimitedUploads reports whether the plan has no quota.
func (p Plan) UnlimitedUploads() bool { return p.Uploads == Unlimited }

var table = []Plan{
	{
		ID:       "free-trial",
		Name:     "Free Trial",
		Uploads:  1,
		Features: []string{"1 Upload", "Partial Output", "7 Days"},
		Price:    0,
	},
	{
		ID:       "starter",
		Name:     "Starter",
		Uploads:  10,
		Features: []string{"10 Uploads/month", "Full Output", "Email Support"},
		Price:    49,
	},
	{
		ID:       "professional",
		Name:     "Professional",
		Uploads:  50,
		Features: []string{"50 Uploads/month", "Full Output", "Priority Support", "API Access"},
		Price:    149,
	},
	{
		ID:       "enterprise",
		Name:     "Enterprise",
		Uploads:  Unlimited,
		Features: []string{"Unlimited Uploads", "Full Output", "Dedicated Support", "Custom Integration"},
		Price:    499,
	},
}

func clone(p Plan) Plan {
	p.Features = append([]string(nil), p.Features...)
	return p
}

// All returns every plan in display order. The result is a copy.
func All() []Plan {
	out := make([]Plan, len(table))
	for i, p := range table {
		out[i] = clone(p)
	}
	return out
}

// Lookup finds a plan by id.
func Lookup(id string) (Plan, bool) {
	for _, p := range table {
		if p.ID == id {
			return clone(p), true
		}
	}
	return Plan{}, false
}
