package entities

import "slices"

// LocaleTable is the full set of site copy for one locale. Field order is
// display order.
type LocaleTable struct {
	Site     Site     `json:"site" toml:"site" yaml:"site"`
	Nav      Nav      `json:"nav" toml:"nav" yaml:"nav"`
	Hero     Hero     `json:"hero" toml:"hero" yaml:"hero"`
	Features Features `json:"features" toml:"features" yaml:"features"`
	Audience Audience `json:"audience" toml:"audience" yaml:"audience"`
	CTA      CTA      `json:"cta" toml:"cta" yaml:"cta"`
	Footer   Footer   `json:"footer" toml:"footer" yaml:"footer"`
	Common   Common   `json:"common" toml:"common" yaml:"common"`
	SEO      SEO      `json:"seo" toml:"seo" yaml:"seo"`
	Language Language `json:"language" toml:"language" yaml:"language"`
}

type Site struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Slogan      string `json:"slogan" toml:"slogan" yaml:"slogan"`
	Description string `json:"description" toml:"description" yaml:"description"`
}

type Nav struct {
	Features string `json:"features" toml:"features" yaml:"features"`
	Audience string `json:"audience" toml:"audience" yaml:"audience"`
	TryNow   string `json:"tryNow" toml:"tryNow" yaml:"tryNow"`
	Download string `json:"download" toml:"download" yaml:"download"`
}

type Hero struct {
	Badge       string `json:"badge" toml:"badge" yaml:"badge"`
	Title       string `json:"title" toml:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Description string `json:"description" toml:"description" yaml:"description"`
	CTA         string `json:"cta" toml:"cta" yaml:"cta"`
}

type Features struct {
	Title    string        `json:"title" toml:"title" yaml:"title"`
	Subtitle string        `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Items    []FeatureItem `json:"items" toml:"items" yaml:"items"`
}

type FeatureItem struct {
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Icon        string `json:"icon" toml:"icon" yaml:"icon"`
	Color       string `json:"color" toml:"color" yaml:"color"`
}

type Audience struct {
	Title    string         `json:"title" toml:"title" yaml:"title"`
	Subtitle string         `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Items    []AudienceItem `json:"items" toml:"items" yaml:"items"`
}

type AudienceItem struct {
	Title  string   `json:"title" toml:"title" yaml:"title"`
	Points []string `json:"points" toml:"points" yaml:"points"`
	Color  string   `json:"color" toml:"color" yaml:"color"`
}

type CTA struct {
	Title    string `json:"title" toml:"title" yaml:"title"`
	Subtitle string `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Button   string `json:"button" toml:"button" yaml:"button"`
}

type Footer struct {
	Description string      `json:"description" toml:"description" yaml:"description"`
	Links       FooterLinks `json:"links" toml:"links" yaml:"links"`
	Copyright   string      `json:"copyright" toml:"copyright" yaml:"copyright"`
}

type FooterLinks struct {
	Product   LinkSection `json:"product" toml:"product" yaml:"product"`
	Resources LinkSection `json:"resources" toml:"resources" yaml:"resources"`
	Contact   LinkSection `json:"contact" toml:"contact" yaml:"contact"`
}

// Sections returns the link sections in display order, keyed as in the table.
func (l FooterLinks) Sections() []NamedLinkSection {
	return []NamedLinkSection{
		{Key: "product", LinkSection: l.Product},
		{Key: "resources", LinkSection: l.Resources},
		{Key: "contact", LinkSection: l.Contact},
	}
}

type NamedLinkSection struct {
	Key string
	LinkSection
}

type LinkSection struct {
	Title string `json:"title" toml:"title" yaml:"title"`
	Items []Link `json:"items" toml:"items" yaml:"items"`
}

type Link struct {
	Name string `json:"name" toml:"name" yaml:"name"`
	URL  string `json:"url" toml:"url" yaml:"url"`
}

type Common struct {
	LearnMore  string `json:"learnMore" toml:"learnMore" yaml:"learnMore"`
	GetStarted string `json:"getStarted" toml:"getStarted" yaml:"getStarted"`
	TryFree    string `json:"tryFree" toml:"tryFree" yaml:"tryFree"`
	ContactUs  string `json:"contactUs" toml:"contactUs" yaml:"contactUs"`
	Loading    string `json:"loading" toml:"loading" yaml:"loading"`
	Error      string `json:"error" toml:"error" yaml:"error"`
	Success    string `json:"success" toml:"success" yaml:"success"`
}

type SEO struct {
	DefaultTitle       string `json:"defaultTitle" toml:"defaultTitle" yaml:"defaultTitle"`
	DefaultDescription string `json:"defaultDescription" toml:"defaultDescription" yaml:"defaultDescription"`
	Keywords           string `json:"keywords" toml:"keywords" yaml:"keywords"`
}

type Language struct {
	Switch string `json:"switch" toml:"switch" yaml:"switch"`
	ZH     string `json:"zh" toml:"zh" yaml:"zh"`
	EN     string `json:"en" toml:"en" yaml:"en"`
}

// Clone returns a deep copy; the slices of the copy share nothing with t.
func (t LocaleTable) Clone() LocaleTable {
	out := t
	out.Features.Items = slices.Clone(t.Features.Items)
	out.Audience.Items = slices.Clone(t.Audience.Items)
	for i := range out.Audience.Items {
		out.Audience.Items[i].Points = slices.Clone(t.Audience.Items[i].Points)
	}
	out.Footer.Links.Product.Items = slices.Clone(t.Footer.Links.Product.Items)
	out.Footer.Links.Resources.Items = slices.Clone(t.Footer.Links.Resources.Items)
	out.Footer.Links.Contact.Items = slices.Clone(t.Footer.Links.Contact.Items)
	return out
}
