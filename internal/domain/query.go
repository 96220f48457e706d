package domain

// NotFoundAnswer is the fixed user-facing reply used when a query cannot be
// resolved, whether extraction produced nothing usable or the datasheets had
// no matching attribute. It is a business result, not an error.
const NotFoundAnswer = "I’m sorry, I can’t find that information."

// ProductQuery is the raw user question. The query text is used verbatim as
// both the extraction input and the cache key.
type ProductQuery struct {
	Query string `json:"query" binding:"required"`
}

// ExtractedIntent is the language model's best guess at the product and the
// requested attribute.
type ExtractedIntent struct {
	Product   string `json:"product"`
	Attribute string `json:"attribute"`
}

// Empty reports whether the intent is unusable for a datasheet lookup.
func (i ExtractedIntent) Empty() bool {
	return i.Product == "" || i.Attribute == ""
}
