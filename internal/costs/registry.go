// Package costs holds the static pricing configuration: how much Silver and
// Gold each feature consumes per run, plus the starting balances and monthly
// allowances granted outside of feature consumption.
package costs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/lakshman261099/career-ai-sub000/internal/models"
)

// ErrUnknownFeature is returned for a feature key that has no configured
// cost. Unknown keys are rejected instead of defaulting to free.
var ErrUnknownFeature = errors.New("unknown feature")

// FeatureCost is the per-run price of a feature in both currencies.
// Either side may be zero, meaning the feature is free in that currency.
type FeatureCost struct {
	Silver int64 `json:"silver"`
	Gold   int64 `json:"gold"`
}

// Amount returns the cost in the given currency.
func (c FeatureCost) Amount(currency string) int64 {
	if currency == models.Gold {
		return c.Gold
	}
	return c.Silver
}

// defaultFeatureCosts is the production pricing table. A JSON file passed to
// Load overrides individual entries and may add new ones.
var defaultFeatureCosts = map[string]FeatureCost{
	"jobpack_free":          {Silver: 1},
	"jobpack_pro":           {Gold: 3},
	"skill_mapper_free":     {Silver: 1},
	"skill_mapper_pro":      {Gold: 3},
	"internship_analyzer":   {Silver: 1, Gold: 2},
	"referral_trainer_free": {Silver: 1},
	"portfolio_idea_free":   {Silver: 1},
	"portfolio_idea_pro":    {Gold: 2},
	"portfolio_publish":     {Gold: 2},
	"dream_planner":         {Gold: 3},
	"daily_coach":           {Gold: 2},
}

// defaultStartingBalances are the one-time grants applied on signup,
// keyed by plan tier.
var defaultStartingBalances = map[string]FeatureCost{
	"free": {Silver: 20},
	"pro":  {Silver: 20, Gold: 3000},
}

// defaultMonthlyAllowances are the recurring Gold bundles for paid plans.
var defaultMonthlyAllowances = map[string]FeatureCost{
	"pro_basic": {Gold: 3000},
}

// Registry is the immutable feature-cost lookup. Built once at process start
// and validated eagerly; lookups never mutate it, so it is safe for
// concurrent use.
type Registry struct {
	features   map[string]FeatureCost
	starting   map[string]FeatureCost
	allowances map[string]FeatureCost
}

// fileConfig is the shape of the optional JSON override file.
type fileConfig struct {
	FeatureCosts      map[string]FeatureCost `json:"feature_costs"`
	StartingBalances  map[string]FeatureCost `json:"starting_balances"`
	MonthlyAllowances map[string]FeatureCost `json:"monthly_allowances"`
}

// Load builds a Registry from the built-in defaults merged with the JSON
// file at path. An empty path keeps the defaults. Malformed entries fail
// loudly here so a bad pricing table can never reach the ledger.
func Load(path string) (*Registry, error) {
	r := &Registry{
		features:   make(map[string]FeatureCost, len(defaultFeatureCosts)),
		starting:   make(map[string]FeatureCost, len(defaultStartingBalances)),
		allowances: make(map[string]FeatureCost, len(defaultMonthlyAllowances)),
	}
	for k, v := range defaultFeatureCosts {
		r.features[k] = v
	}
	for k, v := range defaultStartingBalances {
		r.starting[k] = v
	}
	for k, v := range defaultMonthlyAllowances {
		r.allowances[k] = v
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read cost config: %w", err)
		}
		var cfg fileConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse cost config: %w", err)
		}
		for k, v := range cfg.FeatureCosts {
			r.features[k] = v
		}
		for k, v := range cfg.StartingBalances {
			r.starting[k] = v
		}
		for k, v := range cfg.MonthlyAllowances {
			r.allowances[k] = v
		}
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) validate() error {
	check := func(kind string, m map[string]FeatureCost) error {
		for key, c := range m {
			if key == "" {
				return fmt.Errorf("cost config: empty %s key", kind)
			}
			if c.Silver < 0 || c.Gold < 0 {
				return fmt.Errorf("cost config: negative amount for %s %q", kind, key)
			}
		}
		return nil
	}
	if err := check("feature", r.features); err != nil {
		return err
	}
	if err := check("starting balance", r.starting); err != nil {
		return err
	}
	return check("allowance", r.allowances)
}

// CostOf returns the configured cost of a feature, or ErrUnknownFeature for
// a key that is not in the table.
func (r *Registry) CostOf(feature string) (FeatureCost, error) {
	c, ok := r.features[feature]
	if !ok {
		return FeatureCost{}, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}
	return c, nil
}

// Features returns the configured feature keys in sorted order.
func (r *Registry) Features() []string {
	keys := make([]string, 0, len(r.features))
	for k := range r.features {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StartingBalance returns the signup grant for a plan tier. Unknown tiers
// fall back to the free tier.
func (r *Registry) StartingBalance(plan string) FeatureCost {
	if c, ok := r.starting[plan]; ok {
		return c
	}
	return r.starting["free"]
}

// MonthlyAllowance returns the recurring grant for a plan code, or
// ErrUnknownFeature if the plan has no allowance configured.
func (r *Registry) MonthlyAllowance(plan string) (FeatureCost, error) {
	c, ok := r.allowances[plan]
	if !ok {
		return FeatureCost{}, fmt.Errorf("%w: allowance %q", ErrUnknownFeature, plan)
	}
	return c, nil
}
