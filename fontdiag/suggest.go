// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fontdiag

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/jeandeaual/go-locale"
)

// minSimilarity is the lowest score for which a family is suggested.
const minSimilarity = 0.7

// Closest returns the family of families most similar to name, and its
// similarity in [0, 1]. It returns "" if nothing is close enough.
func Closest(name string, families []string) (string, float64) {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	best, score := "", 0.0
	for _, f := range families {
		s := strutil.Similarity(name, f, jw)
		if s > score || (s == score && best != "" && f < best) {
			best, score = f, s
		}
	}
	if score < minSimilarity {
		return "", score
	}
	return best, score
}

// Locales returns the user locales, most preferred first. CJK text falls
// back to different fonts depending on it.
func Locales() []string {
	ls, err := locale.GetLocales()
	if err != nil || len(ls) == 0 {
		return nil
	}
	return ls
}

// isCJK reports whether a locale tag is Chinese, Japanese or Korean.
func isCJK(tag string) bool {
	tag = strings.ToLower(tag)
	for _, p := range []string{"zh", "ja", "ko"} {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}
