package server

// validateForm is the HTML form submitted from the index page.
type validateForm struct {
	APIKey string `form:"api_key"`
	Idea   string `form:"idea"`
}

// reportForm carries the idea and assessment back for download.
type reportForm struct {
	Idea       string `form:"idea" json:"idea" binding:"required"`
	Assessment string `form:"assessment" json:"assessment" binding:"required"`
}

// validateAPIRequest is the JSON body of the API endpoint; the credential travels in the Authorization header.
type validateAPIRequest struct {
	Idea string `json:"idea"`
}
