package wizard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClassifyIndustry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"ecommerce keywords", "Track your order, view your cart, shipping rates", "ecommerce"},
		{"healthcare keywords", "Book a patient appointment at our clinic", "healthcare"},
		{"financial keywords", "Apply for a loan or check your balance", "financial_services"},
		{"travel keywords", "Manage your booking and flight itinerary", "travel"},
		{"telecom keywords", "Upgrade your data plan, check roaming coverage", "telecom"},
		{"software keywords", "Read the API documentation to start your integration", "software"},
		{"no match", "We sell artisanal candles of distinction", "general"},
		{"empty", "", "general"},
		{"case insensitive", "YOUR ORDER HAS SHIPPED", "ecommerce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIndustry(tt.text); got != tt.want {
				t.Fatalf("ClassifyIndustry(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// When keywords from several industries appear, the first industry in table
// order wins, so classification never depends on keyword position in the text.
func TestClassifyIndustryTableOrderBreaksTies(t *testing.T) {
	text := "patient portal for order management" // healthcare + ecommerce hits
	if got := ClassifyIndustry(text); got != "ecommerce" {
		t.Fatalf("got %q, want ecommerce (first table entry with a hit)", got)
	}
}

const samplePage = `<html>
<head><title>  Acme   Outdoors </title>
<script>var cart = "decoy order text";</script>
<style>.order { color: red }</style>
</head>
<body>
<h1>Welcome to Acme Outdoors</h1>
<p>We are open 9am - 5pm Monday through Friday.</p>
<h2>How do I track my order?</h2>
<p>Use the tracking link in your shipping confirmation email.</p>
<h2>What is your returns policy?</h2>
<p>Returns are accepted within 30 days of delivery.</p>
</body>
</html>`

func TestExtractFacts(t *testing.T) {
	result := ExtractFacts("https://www.acme-outdoors.example/", samplePage)

	if result.Brand != "Acme Outdoors" {
		t.Fatalf("brand = %q", result.Brand)
	}
	if result.Industry != "ecommerce" {
		t.Fatalf("industry = %q", result.Industry)
	}
	if result.Hours == "" {
		t.Fatal("hours not extracted")
	}
	if len(result.FAQs) != 2 {
		t.Fatalf("faqs = %+v", result.FAQs)
	}
	if result.FAQs[0].Question != "How do I track my order?" {
		t.Fatalf("first question = %q", result.FAQs[0].Question)
	}
	if result.FAQs[0].Answer != "Use the tracking link in your shipping confirmation email." {
		t.Fatalf("first answer = %q", result.FAQs[0].Answer)
	}
	if result.FAQs[1].Question != "What is your returns policy?" {
		t.Fatalf("second question = %q", result.FAQs[1].Question)
	}
}

func TestExtractFactsFallsBackToHost(t *testing.T) {
	result := ExtractFacts("https://www.example.com/about", "<html><body>nothing here</body></html>")
	if result.Brand != "example.com" {
		t.Fatalf("brand = %q, want host fallback", result.Brand)
	}
	if result.Industry != "general" {
		t.Fatalf("industry = %q", result.Industry)
	}
	if len(result.FAQs) != 0 {
		t.Fatalf("faqs = %+v, want none", result.FAQs)
	}
}

func TestExtractFactsIsDeterministic(t *testing.T) {
	a := ExtractFacts("https://acme.example/", samplePage)
	b := ExtractFacts("https://acme.example/", samplePage)
	if a.Brand != b.Brand || a.Industry != b.Industry || len(a.FAQs) != len(b.FAQs) {
		t.Fatalf("two extractions differ: %+v vs %+v", a, b)
	}
}

func TestExtractFAQsSkipsUnansweredQuestions(t *testing.T) {
	text := "Is this a question with no answer?\nIs this another question?\nYes, and this is its answer."
	faqs := extractFAQs(text)
	if len(faqs) != 1 {
		t.Fatalf("faqs = %+v, want exactly one", faqs)
	}
	if faqs[0].Question != "Is this another question?" {
		t.Fatalf("question = %q", faqs[0].Question)
	}
}

func TestDiscoverFetchesAndExtracts(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	d := NewDiscoverer(srv.Client())
	result, err := d.Discover(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if result.Brand != "Acme Outdoors" {
		t.Fatalf("brand = %q", result.Brand)
	}
	if gotUA == "" {
		t.Fatal("no User-Agent sent")
	}
}

func TestDiscoverNonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	d := NewDiscoverer(srv.Client())
	if _, err := d.Discover(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
