/*
Package domain holds the vocabulary shared by every pattern package.

It is deliberately tiny: the pattern identifiers used by the catalog and the
metrics, and the single error the demos can produce, an unknown selector.

# Selectors

Factories are chosen at runtime by a selector string ("chicken", "fast",
"electric", ...). Every factory normalizes the selector with
NormalizeSelector and reports a miss with an *InvalidOptionError, which
matches ErrInvalidOption under errors.Is.
*/
package domain
