package services

import (
	"strings"
	"testing"
)

func TestContainsDangerousContent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain text", "just a normal comment", false},
		{"empty", "", false},
		{"script tag", "hi <script>alert(1)</script>", true},
		{"script tag with spacing", "hi < SCRIPT src=x>", true},
		{"event handler", `<img src=x onerror=alert(1)>`, true},
		{"javascript protocol", `<a href="JavaScript: alert(1)">x</a>`, true},
		{"data uri html", "data: text/html;base64,xx", true},
		{"php tag", "look <?php echo 1; ?>", true},
		{"eval call", "try eval(code)", true},
		{"the word online", "shopping online is fine", false},
		{"word containing on", "keep going onwards", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsDangerousContent(tc.input); got != tc.want {
				t.Errorf("ContainsDangerousContent(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	if err := ValidateComment("a perfectly fine comment"); err != nil {
		t.Errorf("valid comment rejected: %v", err)
	}

	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", " \t\n"},
		{"one char", "x"},
		{"too long", strings.Repeat("a", 2001)},
		{"dangerous", "<script>x</script>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateComment(tc.content)
			if err == nil {
				t.Fatalf("ValidateComment(%q) accepted", tc.content)
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("error type %T, want *ValidationError", err)
			}
		})
	}

	// Length limits count bytes of the raw content; 2000 exactly is fine.
	if err := ValidateComment(strings.Repeat("a", 2000)); err != nil {
		t.Errorf("2000-byte comment rejected: %v", err)
	}
}

func TestValidateCommentCollectsAllViolations(t *testing.T) {
	err := ValidateComment(strings.Repeat("x", 2001) + "<script>")
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if len(verr.Messages) != 2 {
		t.Errorf("got %d messages, want 2: %v", len(verr.Messages), verr.Messages)
	}
}

func TestValidateReportReason(t *testing.T) {
	if err := ValidateReportReason("Harassment"); err != nil {
		t.Errorf("valid reason rejected: %v", err)
	}
	if err := ValidateReportReason("  "); err == nil {
		t.Errorf("blank reason accepted")
	}
	if err := ValidateReportReason(strings.Repeat("r", 201)); err == nil {
		t.Errorf("over-long reason accepted")
	}
}
