package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsdraven/rsa-keycheck/pkg/hexcodec"
)

const rule = "=================================================="

// Options control presentation only.
type Options struct {
	Lang   language.Tag
	Glyphs bool
}

type section struct {
	title     string
	candidate string
	reference string
	pass      string
	fail      string
	summary   string
}

var sections = map[string]section{
	CheckModulus: {
		title:     "=== RSA MODULUS CHECK ===",
		candidate: "key table",
		reference: "reference hex",
		pass:      "MODULUS OK",
		fail:      "MODULUS MISMATCH",
		summary:   "RSA modulus",
	},
	CheckExponent: {
		title:     "=== RSA EXPONENT CHECK ===",
		candidate: "key table",
		reference: "reference",
		pass:      "EXPONENT OK",
		fail:      "EXPONENT MISMATCH",
		summary:   "RSA exponent",
	},
	CheckOpenSSL: {
		title:     "=== OPENSSL FORMAT CHECK ===",
		candidate: "OpenSSL dump",
		reference: "reference hex",
		pass:      "OpenSSL dump matches the reference",
		fail:      "OpenSSL dump does not match the reference",
		summary:   "OpenSSL modulus",
	},
}

// Render writes rep as a text report to w.
func Render(w io.Writer, rep *Report, opts Options) error {
	cat, err := newCatalog()
	if err != nil {
		return err
	}
	p := message.NewPrinter(opts.Lang, message.Catalog(cat))

	var buf bytes.Buffer
	p.Fprintln(&buf, p.Sprintf("RSA KEY ARRAY CHECK"))
	buf.WriteString(rule + "\n")

	for i, c := range rep.Checks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		renderCheck(&buf, p, c, opts.Glyphs)
	}

	buf.WriteString("\n" + rule + "\n")
	p.Fprintln(&buf, p.Sprintf("SUMMARY:"))
	if rep.Passed {
		fmt.Fprintln(&buf, mark(true, opts.Glyphs), p.Sprintf("ALL CHECKS PASSED"))
	} else {
		fmt.Fprintln(&buf, mark(false, opts.Glyphs), p.Sprintf("CHECKS FAILED:"))
		for _, name := range rep.Failed() {
			fmt.Fprintf(&buf, "   - %s\n", p.Sprintf(sections[name].summary))
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func renderCheck(buf *bytes.Buffer, p *message.Printer, c Check, glyphs bool) {
	sec := sections[c.Name]
	cand, ref := p.Sprintf(sec.candidate), p.Sprintf(sec.reference)
	p.Fprintln(buf, p.Sprintf(sec.title))

	switch {
	case c.Err != nil:
		fmt.Fprintln(buf, mark(false, glyphs), p.Sprintf("Input could not be parsed: %s", c.Err.Error()))
		return

	case c.Exponent != nil:
		p.Fprintf(buf, "Exponent in %s: %s\n", cand, exponentString(c.Exponent.Candidate))
		p.Fprintf(buf, "Exponent in %s: %s\n", ref, exponentString(c.Exponent.Reference))

	case c.Modulus != nil:
		res := c.Modulus
		p.Fprintf(buf, "Modulus length in %s: %s bytes\n", cand, itoa(res.CandidateLength))
		p.Fprintf(buf, "Modulus length in %s: %s bytes\n", ref, itoa(res.ReferenceLength))
		if c.Fingerprint != "" {
			p.Fprintf(buf, "SHA-256 of %s (128-bit prefix): %s\n", cand, c.Fingerprint)
		}
		if c.KeyTableDump != "" {
			p.Fprintf(buf, "Key table in OpenSSL form:\n")
			buf.WriteString(c.KeyTableDump + "\n")
		}
	}

	if c.Passed {
		fmt.Fprintln(buf, mark(true, glyphs), p.Sprintf(sec.pass))
		return
	}
	fmt.Fprintln(buf, mark(false, glyphs), p.Sprintf(sec.fail))
	if c.Modulus != nil {
		renderDiff(buf, p, c, cand, ref)
	}
}

func renderDiff(buf *bytes.Buffer, p *message.Printer, c Check, cand, ref string) {
	res := c.Modulus
	if from, to, candLonger, ok := res.Surplus(); ok {
		owner := ref
		if candLonger {
			owner = cand
		}
		p.Fprintf(buf, "Length mismatch: bytes %s to %s exist only in %s\n", itoa(from), itoa(to-1), owner)
	}

	if len(res.Mismatches) > 0 {
		buf.WriteByte('\n')
		p.Fprintf(buf, "Byte differences (%s):\n", itoa(len(res.Mismatches)))
		for _, m := range res.Mismatches {
			fmt.Fprintf(buf, "  Byte %d: %s = 0x%02X, %s = 0x%02X\n", m.Index, cand, m.Candidate, ref, m.Reference)
		}
	}

	buf.WriteByte('\n')
	width := max(len([]rune(cand)), len([]rune(ref)))
	p.Fprintf(buf, "First %s bytes:\n", itoa(headBytes))
	fmt.Fprintf(buf, "  %s: %s\n", pad(cand, width), hexcodec.BytesToHex(c.CandidateHead))
	fmt.Fprintf(buf, "  %s: %s\n", pad(ref, width), hexcodec.BytesToHex(c.ReferenceHead))
}

func mark(ok, glyphs bool) string {
	switch {
	case ok && glyphs:
		return "✓"
	case glyphs:
		return "✗"
	case ok:
		return "[PASS]"
	default:
		return "[FAIL]"
	}
}

// exponentString is formatted outside the message printer so digits are never
// regrouped by locale.
func exponentString(e uint64) string {
	return fmt.Sprintf("0x%X (%d)", e, e)
}

func itoa(n int) string { return fmt.Sprint(n) }

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
