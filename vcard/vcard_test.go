package vcard

import (
	"os"
	"strings"
	"testing"

	"github.com/harperreed/snapcard/models"
)

func TestEncodeMinimalContact(t *testing.T) {
	c := models.Contact{Name: "Sarah Chen"}
	got := Encode(c)

	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"FN:Sarah Chen\n" +
		"NOTE: (Met: Conference)\n" +
		"END:VCARD\n"
	if got != want {
		t.Errorf("minimal contact encoded wrong:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeFullContact(t *testing.T) {
	c := models.Contact{
		Name:           "Sarah Chen",
		Company:        "Acme Corp",
		Role:           "VP of Engineering",
		Email:          "sarah@acme.example",
		Phone:          "+1 555 0100",
		Location:       "San Francisco",
		Summary:        "Leads the platform org at Acme.",
		MeetingContext: "Conf Hall B",
	}
	got := Encode(c)

	for _, line := range []string{
		"ORG:Acme Corp\n",
		"TITLE:VP of Engineering\n",
		"EMAIL:sarah@acme.example\n",
		"TEL:+1 555 0100\n",
		"ADR:;;San Francisco;;;;\n",
		"NOTE:Leads the platform org at Acme. (Met: Conf Hall B)\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("encoded vCard missing %q:\n%s", line, got)
		}
	}
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	got := Encode(models.Contact{Name: "X"})
	for _, prefix := range []string{"ORG:", "TITLE:", "EMAIL:", "TEL:", "ADR:"} {
		if strings.Contains(got, prefix) {
			t.Errorf("empty field emitted as %s line:\n%s", prefix, got)
		}
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Sarah Chen", "Sarah_Chen.vcf"},
		{"  Sarah   Q.  Chen ", "Sarah_Q._Chen.vcf"},
		{"", "contact.vcf"},
		{"   ", "contact.vcf"},
	}
	for _, tc := range cases {
		if got := Filename(models.Contact{Name: tc.name}); got != tc.want {
			t.Errorf("Filename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	c := models.Contact{Name: "Sarah Chen", Company: "Acme Corp"}

	path, err := WriteFile(c, dir)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !strings.HasSuffix(path, "Sarah_Chen.vcf") {
		t.Errorf("unexpected export path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export failed: %v", err)
	}
	if string(data) != Encode(c) {
		t.Error("file contents differ from encoded document")
	}
}
