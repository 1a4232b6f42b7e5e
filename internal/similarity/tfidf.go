// Package similarity measures lexical overlap between a job description and
// a resume using TF-IDF weighted cosine similarity over a two-document corpus.
package similarity

import (
	"math"
	"regexp"
	"strings"
)

// tokenRe matches runs of two or more word characters.
var tokenRe = regexp.MustCompile(`\w\w+`)

// terms tokenizes a document into its TF-IDF term sequence: lowercased
// tokens with stopwords removed, then unigrams plus adjacent bigrams over
// the filtered stream.
func terms(doc string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(doc), -1)
	filtered := tokens[:0]
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; !stop {
			filtered = append(filtered, tok)
		}
	}

	out := make([]string, 0, 2*len(filtered))
	out = append(out, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		out = append(out, filtered[i]+" "+filtered[i+1])
	}
	return out
}

// termFreq counts raw occurrences of each term.
func termFreq(ts []string) map[string]float64 {
	tf := make(map[string]float64, len(ts))
	for _, t := range ts {
		tf[t]++
	}
	return tf
}

// Similarity returns the cosine similarity of the TF-IDF vectors of two
// documents, in [0, 1]. The corpus is exactly the two documents, so document
// frequency is 1 or 2 per term and the smoothed inverse document frequency
// is ln((1+2)/(1+df)) + 1. If either document produces no terms the result
// is 0 rather than an error.
func Similarity(docA, docB string) float64 {
	tfA := termFreq(terms(docA))
	tfB := termFreq(terms(docB))
	if len(tfA) == 0 || len(tfB) == 0 {
		return 0
	}

	idf := func(term string) float64 {
		df := 0.0
		if _, ok := tfA[term]; ok {
			df++
		}
		if _, ok := tfB[term]; ok {
			df++
		}
		return math.Log(3.0/(1.0+df)) + 1.0
	}

	weigh := func(tf map[string]float64) map[string]float64 {
		vec := make(map[string]float64, len(tf))
		var norm float64
		for term, count := range tf {
			w := count * idf(term)
			vec[term] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		for term := range vec {
			vec[term] /= norm
		}
		return vec
	}

	vecA := weigh(tfA)
	vecB := weigh(tfB)
	if len(vecB) < len(vecA) {
		vecA, vecB = vecB, vecA
	}

	var dot float64
	for term, w := range vecA {
		dot += w * vecB[term]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
