package analyzer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguageVersion is returned for unrecognised language version names.
var ErrUnknownLanguageVersion = errors.New("unknown language version")

// LanguageVersion is a C# language version, ordered by release.
type LanguageVersion int

const (
	CSharp1   LanguageVersion = 10
	CSharp2   LanguageVersion = 20
	CSharp3   LanguageVersion = 30
	CSharp4   LanguageVersion = 40
	CSharp5   LanguageVersion = 50
	CSharp6   LanguageVersion = 60
	CSharp7   LanguageVersion = 70
	CSharp7_1 LanguageVersion = 71
	CSharp7_2 LanguageVersion = 72
	CSharp7_3 LanguageVersion = 73
	CSharp8   LanguageVersion = 80
	CSharp9   LanguageVersion = 90
	CSharp10  LanguageVersion = 100
	CSharp11  LanguageVersion = 110
	CSharp12  LanguageVersion = 120

	Latest                  = CSharp12
	Preview LanguageVersion = 1000
)

var versionNames = map[string]LanguageVersion{
	"1": CSharp1, "2": CSharp2, "3": CSharp3, "4": CSharp4, "5": CSharp5, "6": CSharp6,
	"7": CSharp7, "7.0": CSharp7, "7.1": CSharp7_1, "7.2": CSharp7_2, "7.3": CSharp7_3,
	"8": CSharp8, "8.0": CSharp8, "9": CSharp9, "9.0": CSharp9,
	"10": CSharp10, "10.0": CSharp10, "11": CSharp11, "11.0": CSharp11, "12": CSharp12, "12.0": CSharp12,
	"": Latest, "default": Latest, "latest": Latest, "latestmajor": Latest,
	"preview": Preview,
}

// ParseLanguageVersion parses names such as "7.3", "latest" or "preview".
func ParseLanguageVersion(s string) (LanguageVersion, error) {
	v, ok := versionNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLanguageVersion, s)
	}
	return v, nil
}

func (v LanguageVersion) String() string {
	switch {
	case v == Preview:
		return "preview"
	case v%10 != 0:
		return fmt.Sprintf("C# %d.%d", v/10, v%10)
	default:
		return fmt.Sprintf("C# %d", v/10)
	}
}
