package models

// UpdateItem is one announcement card on the home page.
type UpdateItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

// HomePageContent is the editable landing page copy.
type HomePageContent struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Updates  []UpdateItem `json:"updates"`
}
