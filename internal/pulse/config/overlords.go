package config

// OverlordConfig describes one tracked public figure. The list is static
// configuration: keys are stable identifiers used everywhere downstream.
type OverlordConfig struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Companies   []string `json:"companies"`
	SearchQuery string   `json:"search_query"`
	AccentColor string   `json:"accent_color"`
	ArtworkSlug string   `json:"artwork_slug"`
}

// QualityDomains is the curated allow-list of reputable tech/business news
// domains. The NewsAPI `domains` parameter restricts results to these only.
var QualityDomains = []string{
	"reuters.com",
	"apnews.com",
	"bloomberg.com",
	"cnbc.com",
	"wsj.com",
	"nytimes.com",
	"washingtonpost.com",
	"theguardian.com",
	"bbc.com",
	"bbc.co.uk",
	"techcrunch.com",
	"theverge.com",
	"arstechnica.com",
	"wired.com",
	"engadget.com",
	"zdnet.com",
	"cnet.com",
	"thedailybeast.com",
	"businessinsider.com",
	"forbes.com",
	"ft.com",
	"theatlantic.com",
	"axios.com",
	"semafor.com",
	"theinformation.com",
	"protocol.com",
	"venturebeat.com",
	"fortune.com",
	"marketwatch.com",
	"politico.com",
}

// BlockedDomains lists domains known for low-quality, clickbait, or scraped
// content. Articles from these domains are filtered out post-fetch as a
// safety net.
var BlockedDomains = []string{
	"biztoc.com",
	"yahoo.com",
	"msn.com",
	"news.google.com",
	"ground.news",
	"smarteranalyst.com",
	"investorplace.com",
	"benzinga.com",
	"thestreet.com",
	"fool.com",
	"seekingalpha.com",
	"accesswire.com",
	"prnewswire.com",
	"globenewswire.com",
	"businesswire.com",
	"newsbreak.com",
	"newsbtc.com",
}

// Overlords is the tracked-subject roster. Immutable at runtime.
var Overlords = []OverlordConfig{
	{
		Key:         "musk",
		Name:        "Elon Musk",
		ShortName:   "Musk",
		Companies:   []string{"Tesla", "SpaceX", "X"},
		SearchQuery: `"Elon Musk" AND (Tesla OR SpaceX OR xAI OR Neuralink OR "boring company" OR DOGE)`,
		AccentColor: "#5b8cf7",
		ArtworkSlug: "elon-musk",
	},
	{
		Key:         "zuckerberg",
		Name:        "Mark Zuckerberg",
		ShortName:   "Zuckerberg",
		Companies:   []string{"Meta", "Instagram", "Threads"},
		SearchQuery: `"Mark Zuckerberg" AND (Meta OR Instagram OR Threads OR WhatsApp OR "Reality Labs" OR Llama)`,
		AccentColor: "#00d4ff",
		ArtworkSlug: "mark-zuckerberg",
	},
	{
		Key:         "altman",
		Name:        "Sam Altman",
		ShortName:   "Altman",
		Companies:   []string{"OpenAI", "ChatGPT"},
		SearchQuery: `"Sam Altman" AND (OpenAI OR ChatGPT OR GPT OR "artificial intelligence" OR AGI)`,
		AccentColor: "#f5e6a3",
		ArtworkSlug: "sam-altman",
	},
	{
		Key:         "bezos",
		Name:        "Jeff Bezos",
		ShortName:   "Bezos",
		Companies:   []string{"Amazon", "Blue Origin"},
		SearchQuery: `"Jeff Bezos" AND (Amazon OR "Blue Origin" OR AWS OR Kuiper OR "Washington Post")`,
		AccentColor: "#ff9900",
		ArtworkSlug: "jeff-bezos",
	},
	{
		Key:         "huang",
		Name:        "Jensen Huang",
		ShortName:   "Huang",
		Companies:   []string{"Nvidia"},
		SearchQuery: `"Jensen Huang" AND (Nvidia OR GPU OR "artificial intelligence" OR CUDA OR "data center")`,
		AccentColor: "#76b900",
		ArtworkSlug: "jensen-huang",
	},
}

// OverlordMap indexes the roster by key.
var OverlordMap = func() map[string]OverlordConfig {
	m := make(map[string]OverlordConfig, len(Overlords))
	for _, o := range Overlords {
		m[o.Key] = o
	}
	return m
}()

// GetOverlord looks up an overlord by key.
func GetOverlord(key string) (OverlordConfig, bool) {
	o, ok := OverlordMap[key]
	return o, ok
}
