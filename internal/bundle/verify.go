package bundle

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// demoChecks maps a selector the demo renderer depends on to a
// human-readable description for the error message.
var demoChecks = []struct {
	selector string
	desc     string
}{
	{`script[src="js/categoriesWithThings.js"]`, "grouped data module script tag"},
	{`#output`, "render output mount point"},
	{`input#sample-size[type="number"]`, "sample size input"},
}

// VerifyDemo parses an emitted demo page and checks that every element the
// browser-side renderer needs is present. A template edit that drops the
// data script or the mount point should fail the build, not the user's
// first page load.
func VerifyDemo(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &EmitError{Artifact: "index.html", Message: "failed to parse demo page", Cause: err}
	}

	var missing []string
	for _, c := range demoChecks {
		if doc.Find(c.selector).Length() == 0 {
			missing = append(missing, c.desc)
		}
	}
	if len(missing) > 0 {
		return &VerifyError{Missing: missing}
	}
	return nil
}
