// Package catalog loads question catalogs produced by the accountant-side
// tooling and models the question records the form commands operate on.
//
// A catalog is a JSON document with a client identifier and an ordered list of
// question records. Optional fields are resolved once at load time; downstream
// code never inspects raw documents. The package also derives the stable keys
// used to index draft answers and provides the display ordering, filtering,
// and amount-formatting helpers shared by the interactive commands.
package catalog
