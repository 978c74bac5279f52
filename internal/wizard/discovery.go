package wizard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/arcline/connect-mcp/internal/logger"
)

// FAQ is one question/answer pair discovered on a brand site.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DiscoveryResult holds the structured facts extracted from a brand site.
type DiscoveryResult struct {
	SiteURL  string `json:"site_url"`
	Brand    string `json:"brand"`
	Industry string `json:"industry"`
	Hours    string `json:"hours,omitempty"`
	FAQs     []FAQ  `json:"faqs,omitempty"`
}

// industryEntry pairs an industry label with its keyword set. The table is a
// slice, not a map: classification scans it in order and the first industry
// with a keyword hit wins, which makes the classifier fully deterministic.
type industryEntry struct {
	Industry string
	Keywords []string
}

var industryTable = []industryEntry{
	{"ecommerce", []string{"order", "cart", "shipping", "checkout", "returns", "catalog"}},
	{"healthcare", []string{"patient", "appointment", "clinic", "physician", "prescription", "insurance"}},
	{"financial_services", []string{"banking", "loan", "mortgage", "investment", "transaction", "balance"}},
	{"travel", []string{"booking", "reservation", "flight", "hotel", "itinerary", "destination"}},
	{"telecom", []string{"broadband", "data plan", "sim", "roaming", "coverage", "bandwidth"}},
	{"software", []string{"api", "subscription", "license", "integration", "deployment", "documentation"}},
}

// ClassifyIndustry returns the first industry in the table with a keyword
// present in text, or "general" when nothing matches. Matching is
// case-insensitive whole-text substring membership.
func ClassifyIndustry(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range industryTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Industry
			}
		}
	}
	return "general"
}

// Discoverer extracts brand facts from a site. The zero value is not usable;
// call NewDiscoverer.
type Discoverer struct {
	client *http.Client
}

// NewDiscoverer creates a Discoverer with a bounded-timeout HTTP client.
func NewDiscoverer(client *http.Client) *Discoverer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Discoverer{client: client}
}

const maxPageBytes = 4 << 20

// Discover fetches siteURL and extracts brand name, industry classification,
// opening hours and FAQ entries. Extraction is heuristic; a page with none
// of the markers still yields a result with the URL host as brand.
func (d *Discoverer) Discover(ctx context.Context, siteURL string) (*DiscoveryResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, siteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("discovery request: %w", err)
	}
	req.Header.Set("User-Agent", "connect-mcp/1.0 (+onboarding-discovery)")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery fetch: %s returned %s", siteURL, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("discovery read: %w", err)
	}

	result := ExtractFacts(siteURL, string(body))
	logger.Info("[WIZARD] discovery: brand=%q industry=%s faqs=%d", result.Brand, result.Industry, len(result.FAQs))
	return result, nil
}

var (
	titleRe  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	scriptRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	spaceRe  = regexp.MustCompile(`[ \t]+`)
	hoursRe  = regexp.MustCompile(`(?i)(open|hours)[^.\n]{0,80}?(\d{1,2}(:\d{2})?\s*(am|pm)?\s*(-|to|–)\s*\d{1,2}(:\d{2})?\s*(am|pm)?)`)
)

// ExtractFacts parses raw page HTML into a DiscoveryResult. Pure function,
// exported for tests and for restartability: re-running it on the same page
// yields the same result.
func ExtractFacts(siteURL, page string) *DiscoveryResult {
	result := &DiscoveryResult{SiteURL: siteURL}

	if m := titleRe.FindStringSubmatch(page); m != nil {
		result.Brand = cleanText(m[1])
	}
	if result.Brand == "" {
		result.Brand = hostOf(siteURL)
	}

	text := scriptRe.ReplaceAllString(page, " ")
	text = tagRe.ReplaceAllString(text, "\n")
	text = cleanLines(text)

	result.Industry = ClassifyIndustry(text)
	if m := hoursRe.FindStringSubmatch(text); m != nil {
		result.Hours = cleanText(m[0])
	}
	result.FAQs = extractFAQs(text)
	return result
}

// extractFAQs pairs question lines (ending in "?") with the following
// non-question line as the answer.
func extractFAQs(text string) []FAQ {
	var faqs []FAQ
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		q := strings.TrimSpace(lines[i])
		if !strings.HasSuffix(q, "?") || len(q) < 8 {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			a := strings.TrimSpace(lines[j])
			if a == "" {
				continue
			}
			if strings.HasSuffix(a, "?") {
				break // next question, this one had no answer text
			}
			faqs = append(faqs, FAQ{Question: q, Answer: a})
			i = j
			break
		}
	}
	return faqs
}

func cleanText(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(strings.ReplaceAll(s, "\n", " "), " "))
}

func cleanLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(spaceRe.ReplaceAllString(l, " "))
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func hostOf(siteURL string) string {
	s := siteURL
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimPrefix(s, "www.")
}
