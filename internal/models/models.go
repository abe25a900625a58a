package models

import "encoding/json"

type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

type Table struct {
	Category string      `json:"category"`
	Items    []ItemCount `json:"items"`
}

type Report struct {
	Query  string  `json:"query,omitempty"`
	Pages  int     `json:"pages"`
	Tweets int     `json:"tweets"`
	Tables []Table `json:"tables"`
}

type Trend struct {
	Name  string `json:"name"`
	Query string `json:"query"`
	URL   string `json:"url"`
	// TweetVolume is nil when the API reports no volume.
	TweetVolume *int64 `json:"tweet_volume"`
}

type Location struct {
	Name  string `json:"name"`
	WOEID int64  `json:"woeid"`
}

type TrendsList struct {
	Trends    []Trend    `json:"trends"`
	AsOf      string     `json:"as_of"`
	CreatedAt string     `json:"created_at"`
	Locations []Location `json:"locations"`
}

type Hashtag struct {
	Text string `json:"text"`
}

type UserMention struct {
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

type Entities struct {
	Hashtags     []Hashtag     `json:"hashtags"`
	UserMentions []UserMention `json:"user_mentions"`
}

type User struct {
	ScreenName string `json:"screen_name"`
}

type Status struct {
	IDStr    string   `json:"id_str"`
	Text     string   `json:"text"`
	FullText string   `json:"full_text,omitempty"`
	Source   string   `json:"source"`
	User     User     `json:"user"`
	Entities Entities `json:"entities"`
}

// Content returns the untruncated text when the API was asked for it.
func (s Status) Content() string {
	if s.FullText != "" {
		return s.FullText
	}
	return s.Text
}

type SearchMetadata struct {
	Count       int    `json:"count"`
	MaxIDStr    string `json:"max_id_str"`
	Query       string `json:"query"`
	NextResults string `json:"next_results"`
}

// Page is one search response. The raw bytes are kept so a page is written
// back out exactly as the API returned it.
type Page struct {
	Statuses       []Status        `json:"statuses"`
	SearchMetadata *SearchMetadata `json:"search_metadata"`

	Raw json.RawMessage `json:"-"`
}

type pageFields Page

func (p *Page) UnmarshalJSON(data []byte) error {
	var fields pageFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Page(fields)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (p Page) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	return json.Marshal(pageFields(p))
}
