package pagination

const defaultLimit = 20

// Params holds the cursor and limit query parameters. Embed it in a Huma
// input struct to add pagination to a listing operation.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                          default:"20" minimum:"1" maximum:"100"`
}

// DefaultLimit returns the requested limit, or the default page size when the
// client sent none.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 {
		return defaultLimit
	}
	return p.Limit
}
