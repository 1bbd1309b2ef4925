// internal/tools/news/models.go
package news

type Input struct {
	Topic string `json:"topic"`
}

// Output carries formatted display strings, one per article. Articles
// is never empty: failed live calls degrade to synthetic or static
// entries.
type Output struct {
	Articles []string `json:"articles"`
}

// everythingResponse mirrors the live provider's search payload.
type everythingResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title  string `json:"title"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
		Description string `json:"description"`
		URL         string `json:"url"`
	} `json:"articles"`
}
