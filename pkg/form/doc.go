// Package form runs the validation pipeline over a collected set of input
// fields and folds per-field issues into a single pass/fail result.
//
// Fields come in two variants behind the InputData interface. Optional
// fields are carried through processing untouched. Mandatory fields capture
// their issues at construction time: NewMandatory runs a validator.Director
// over the raw input before the record exists, so a Mandatory value is
// immutable evidence of a completed validation run.
//
// A Pipeline owns an ordered set of records. Update replaces a record with
// a matching field ID in place or appends a new one; Remove drops by field
// ID and is a no-op when absent. Neither triggers validation. Process walks
// the held set in order, collects the mandatory fields whose issue list is
// non-empty and assembles a ProcessResult. Process never fails: an empty
// set produces a trivially valid result.
//
//	p := form.NewPipeline()
//	p.Update(form.NewMandatory("username", name, validator.Username))
//	p.Update(form.NewOptional("bio", bio))
//
//	result := p.Process()
//	if !result.Valid {
//	    for _, f := range result.InvalidFields {
//	        // f.FieldID, f.Issues in scan order
//	    }
//	}
//
// A pipeline instance has a single logical owner. It performs no internal
// locking; concurrent mutation requires an external lock around Update,
// Remove and Process.
package form
