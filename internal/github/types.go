package github

// API response types for the two endpoint families the client pages
// through. Only the fields the planner consumes are mapped.

type repository struct {
	Name string `json:"name"`
}

type commitEntry struct {
	Commit struct {
		Author struct {
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}
