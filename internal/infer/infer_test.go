package infer

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

func testInferencer() *Inferencer {
	return New(Options{Year: 2024})
}

func TestSlug_Basic(t *testing.T) {
	inf := testInferencer()
	got := inf.Slug("DGCA CPL Exam Guide")
	if got != "dgca-cpl-exam-guide" {
		t.Errorf("slug = %q, want %q", got, "dgca-cpl-exam-guide")
	}
}

func TestSlug_Invariants(t *testing.T) {
	inf := testInferencer()
	valid := regexp.MustCompile(`^[a-z0-9-]+$`)
	titles := []string{
		"Hello, World!",
		"  leading and trailing  ",
		"Multiple --- hyphens -- everywhere",
		"Ünïcöde & Symbols ©®",
		"Tabs\tand\nnewlines",
		"already-a-slug",
	}
	for _, title := range titles {
		s := inf.Slug(title)
		if !valid.MatchString(s) {
			t.Errorf("Slug(%q) = %q contains invalid characters", title, s)
		}
		if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
			t.Errorf("Slug(%q) = %q has leading/trailing hyphen", title, s)
		}
		if strings.Contains(s, "--") {
			t.Errorf("Slug(%q) = %q has consecutive hyphens", title, s)
		}
	}
}

func TestSlug_NoAlphanumericFallback(t *testing.T) {
	inf := testInferencer()
	for _, title := range []string{"", "!!!", "©©©", "---", "   "} {
		if got := inf.Slug(title); got != SlugFallback {
			t.Errorf("Slug(%q) = %q, want fallback %q", title, got, SlugFallback)
		}
	}
}

func TestExcerpt_SentenceBoundary(t *testing.T) {
	inf := testInferencer()
	content := "First sentence here. Second sentence follows. " +
		strings.Repeat("Filler sentence that keeps going and going. ", 10)
	got := inf.Excerpt(content)
	if utf8.RuneCountInString(got) > 160 {
		t.Errorf("excerpt length = %d, want <= 160", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("excerpt %q does not end at a sentence boundary", got)
	}
	if !strings.HasPrefix(got, "First sentence here.") {
		t.Errorf("excerpt %q does not start with first sentence", got)
	}
}

func TestExcerpt_StripsMarkup(t *testing.T) {
	inf := testInferencer()
	got := inf.Excerpt("# Heading with *emphasis* and [link](url). More text.")
	if strings.ContainsAny(got, "#*[]()") {
		t.Errorf("excerpt %q still contains markup punctuation", got)
	}
}

func TestExcerpt_Empty(t *testing.T) {
	inf := testInferencer()
	if got := inf.Excerpt(""); got != "" {
		t.Errorf("Excerpt(\"\") = %q, want empty", got)
	}
}

func TestExcerpt_MaxBelowFirstSentence(t *testing.T) {
	inf := New(Options{ExcerptMaxLen: 10, Year: 2024})
	if got := inf.Excerpt("This sentence is much longer than ten characters."); got != "" {
		t.Errorf("excerpt = %q, want empty when max < first sentence", got)
	}
}

func TestCategorize_PriorityOrder(t *testing.T) {
	inf := testInferencer()
	// Matches both the exam group and the career group; exam wins.
	got := inf.Categorize("Your dgca exam and career", "both topics discussed")
	if got != "DGCA Exams" {
		t.Errorf("category = %q, want %q", got, "DGCA Exams")
	}
}

func TestCategorize_Groups(t *testing.T) {
	inf := testInferencer()
	cases := []struct {
		title, content, want string
	}{
		{"Cabin procedures", "regulation overview", "Safety & Regulations"},
		{"Salary outlook", "airline job market", "Aviation Careers"},
		{"Ground lessons", "choosing an instructor", "Flight Training"},
		{"Type rating", "license renewal", "Pilot Licensing"},
		{"Turbofan engine", "avionics overview", "Aircraft Systems"},
		{"ILS approach", "gps usage", "Navigation"},
		{"Turbulence ahead", "wind shear basics", "Weather & Meteorology"},
		{"Something else", "entirely unrelated text", "Aviation Industry"},
	}
	for _, tc := range cases {
		if got := inf.Categorize(tc.title, tc.content); got != tc.want {
			t.Errorf("Categorize(%q, %q) = %q, want %q", tc.title, tc.content, got, tc.want)
		}
	}
}

func TestTags_CapAndDedup(t *testing.T) {
	inf := testInferencer()
	// Text hits far more than five vocabulary terms.
	text := "pilot training cpl atpl dgca flight school aviation career commercial pilot navigation meteorology safety"
	tags := inf.Tags("Everything", text, 5)
	if len(tags) > 5 {
		t.Errorf("len(tags) = %d, want <= 5", len(tags))
	}
	seen := make(map[string]struct{})
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			t.Errorf("duplicate tag %q in %v", tag, tags)
		}
		seen[tag] = struct{}{}
	}
}

func TestTags_RegexSupplement(t *testing.T) {
	inf := testInferencer()
	// No vocabulary term matches, but regex keywords do.
	tags := inf.Tags("Aircraft basics", "an aircraft and a pilot", 5)
	if len(tags) == 0 {
		t.Fatal("expected supplemental tags")
	}
	if tags[0] != "aircraft" {
		t.Errorf("tags = %v, want first-occurrence order starting with %q", tags, "aircraft")
	}
}

func TestReadingTime(t *testing.T) {
	inf := testInferencer()
	cases := []struct {
		words int
		want  int
	}{
		{0, 1}, {1, 1}, {225, 1}, {226, 2}, {450, 2}, {1000, 5},
	}
	for _, tc := range cases {
		content := strings.TrimSpace(strings.Repeat("word ", tc.words))
		if got := inf.ReadingTime(content); got != tc.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestSEOTitle_ShortPassThrough(t *testing.T) {
	inf := testInferencer()
	title := "Short title"
	if got := inf.SEOTitle(title); got != title {
		t.Errorf("SEOTitle = %q, want unchanged %q", got, title)
	}
}

func TestSEOTitle_LongTruncatedWithYear(t *testing.T) {
	inf := New(Options{Year: 2024})
	title := strings.Repeat("very long title ", 6) // 96 chars
	got := inf.SEOTitle(title)
	if !strings.HasSuffix(got, "... 2024") {
		t.Errorf("SEOTitle = %q, want year suffix", got)
	}
	if utf8.RuneCountInString(got) != 50+len("... 2024") {
		t.Errorf("SEOTitle length = %d", utf8.RuneCountInString(got))
	}
}

func TestSEODescription_Fallbacks(t *testing.T) {
	inf := testInferencer()

	if got := inf.SEODescription("A fitting excerpt.", "Title"); got != "A fitting excerpt." {
		t.Errorf("expected excerpt pass-through, got %q", got)
	}

	got := inf.SEODescription("", "Pilot Careers")
	if !strings.Contains(got, "pilot careers") || utf8.RuneCountInString(got) > 160 {
		t.Errorf("templated description = %q", got)
	}

	got = inf.SEODescription("", "")
	if !strings.Contains(got, "Aviators Training Centre") {
		t.Errorf("generic fallback = %q", got)
	}
}

func TestFocusKeyword_PriorityThenRegexThenDefault(t *testing.T) {
	inf := testInferencer()

	if got := inf.FocusKeyword("DGCA exam dates", "also mentions flight training"); got != "dgca exam" {
		t.Errorf("focus keyword = %q, want %q", got, "dgca exam")
	}
	if got := inf.FocusKeyword("About aircraft", "aircraft maintenance"); got != "aircraft" {
		t.Errorf("focus keyword = %q, want %q", got, "aircraft")
	}
	if got := inf.FocusKeyword("Nothing relevant", "plain text"); got != defaultFocusKeyword {
		t.Errorf("focus keyword = %q, want default %q", got, defaultFocusKeyword)
	}
}

func TestSelectAuthor(t *testing.T) {
	inf := testInferencer()
	cases := []struct {
		content string
		want    string
	}{
		{"our ground school covers this", "Ankit Kumar"},
		{"safety first in the cockpit", "Dhruv Shirkoli"},
		{"the exam syllabus includes", "Saksham Khandelwal"},
		{"generic aviation content", "Aman Suryavanshi"},
		{"written by dhruv shirkoli", "Dhruv Shirkoli"},
	}
	for _, tc := range cases {
		if got := inf.SelectAuthor(tc.content); got.Name != tc.want {
			t.Errorf("SelectAuthor(%q) = %q, want %q", tc.content, got.Name, tc.want)
		}
	}
}

func TestStructuredData(t *testing.T) {
	inf := testInferencer()

	sd := inf.StructuredData("a step by step guide with steps", 3)
	if sd.ArticleType != "HowTo" || sd.LearningResourceType != "Guide" {
		t.Errorf("structured data = %+v, want HowTo/Guide", sd)
	}
	if sd.TimeRequired != "PT3M" {
		t.Errorf("timeRequired = %q, want PT3M", sd.TimeRequired)
	}

	sd = inf.StructuredData("an introduction for the beginner", 1)
	if sd.EducationalLevel != "Beginner" {
		t.Errorf("level = %q, want Beginner", sd.EducationalLevel)
	}

	sd = inf.StructuredData("for the advanced professional", 1)
	if sd.EducationalLevel != "Advanced" {
		t.Errorf("level = %q, want Advanced", sd.EducationalLevel)
	}

	sd = inf.StructuredData("plain narrative text", 1)
	if sd.ArticleType != "Educational" || sd.EducationalLevel != "Intermediate" {
		t.Errorf("defaults = %+v", sd)
	}
}

func TestCleanBody(t *testing.T) {
	inf := testInferencer()
	in := "Intro text.\r\n\r\n\r\n\r\n<!-- CTA_COURSES_INTEGRATION -->\nOutro.\n"
	got := inf.CleanBody(in)
	if strings.Contains(got, "CTA_") {
		t.Errorf("CTA marker not stripped: %q", got)
	}
	if strings.Contains(got, "\r") {
		t.Errorf("CRLF not normalised: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank run not collapsed: %q", got)
	}
}
