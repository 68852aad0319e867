package tui

// RefreshController decides when the detail view must re-fetch country data
// as navigation changes. It is keyed by the last-requested country code, not
// by any UI framework lifecycle: a fetch is issued if and only if the target
// code differs from the last one requested.
//
// Every fetch is tagged with a monotonically increasing sequence number.
// When rapid navigation leaves multiple fetches in flight, only the response
// carrying the latest sequence is applied; superseded responses are
// discarded, so the displayed record can never regress to an older
// navigation target.
//
// The zero value is ready to use: nothing requested, nothing displayed.
type RefreshController struct {
	requested string
	displayed string
	seq       uint64
}

// NeedsFetch reports whether navigating to code requires a new fetch.
// Consecutive navigations to the already-requested code do not.
func (c *RefreshController) NeedsFetch(code string) bool {
	return code != c.requested
}

// Begin records that a fetch for code has been issued and returns the
// sequence number that must be attached to its response.
func (c *RefreshController) Begin(code string) uint64 {
	c.requested = code
	c.seq++
	return c.seq
}

// Complete processes a finished fetch. It returns true when the response is
// current and succeeded, meaning the caller should display the record for
// code. Failed fetches roll the requested code back to the displayed one so
// the next navigation to the failed code retries instead of being deduped.
// Responses from superseded fetches return false and change nothing.
func (c *RefreshController) Complete(seq uint64, code string, err error) bool {
	if seq != c.seq {
		return false
	}
	if err != nil {
		c.requested = c.displayed
		return false
	}
	c.displayed = code
	return true
}

// Latest reports whether seq tags the most recently issued fetch.
func (c *RefreshController) Latest(seq uint64) bool {
	return seq == c.seq
}

// Displayed returns the code of the currently displayed record, or empty
// string while the view state is absent.
func (c *RefreshController) Displayed() string {
	return c.displayed
}
