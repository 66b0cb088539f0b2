// Package policy decides which form fields are mandatory and which check
// recipe applies to each of them.
//
// A Policy maps field IDs to validator.Director recipes. Classify builds
// the input record for one collected field: mandatory with issues
// precomputed through the mapped director when a recipe is registered,
// optional otherwise. The stock policy registers the username and password
// recipes with bounds taken from Config, which loads from the environment
// in the usual way:
//
//	cfg, err := policy.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	p := policy.New(cfg)
//
//	record := p.Classify("username", rawValue)
//
// Register adds or overrides recipes, so applications extend field coverage
// without touching the checks or the pipeline.
package policy
