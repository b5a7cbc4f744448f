package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var (
	markerRegex  = regexp.MustCompile(`[Ss](\d{1,2})[Ee](\d{1,2})`)
	bracketRegex = regexp.MustCompile(`\[.*?\]`)
	parenRegex   = regexp.MustCompile(`\(.*?\)`)
)

var videoExtensions = map[string]bool{
	".mkv": true,
	".avi": true,
	".mp4": true,
	".flv": true,
	".m4v": true,
	".mov": true,
	".wmv": true,
}

func ExtractSeasonEpisode(filename string) *SeasonEpisode {
	match := markerRegex.FindStringSubmatch(filename)
	if match == nil {
		return nil
	}

	season, _ := strconv.Atoi(match[1])
	episode, _ := strconv.Atoi(match[2])

	return &SeasonEpisode{
		Season:  fmt.Sprintf("%02d", season),
		Episode: fmt.Sprintf("%02d", episode),
	}
}

// markerIndex reports the byte offset of the first season/episode marker,
// -1 when the filename has none.
func markerIndex(filename string) int {
	loc := markerRegex.FindStringIndex(filename)
	if loc == nil {
		return -1
	}
	return loc[0]
}

func NormalizeShowName(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = titleCaseWord(word)
	}
	return strings.Join(words, ".")
}

func ExtractShowNameFromFilename(filename string) string {
	idx := markerIndex(filename)
	if idx < 0 {
		return ""
	}

	prefix := filename[:idx]
	prefix = bracketRegex.ReplaceAllString(prefix, " ")
	prefix = parenRegex.ReplaceAllString(prefix, " ")
	prefix = strings.ReplaceAll(prefix, ".", " ")
	prefix = strings.ReplaceAll(prefix, "-", " ")
	prefix = strings.ReplaceAll(prefix, "_", " ")

	words := strings.Fields(prefix)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		words[i] = titleCaseWord(word)
	}
	return strings.Join(words, " ")
}

// ShowNameMatchesFilename reports whether every word of showName appears as a
// whole word in the filename. Whole words only: "Rookie" does not match
// "Therookie.S04E07.mkv". Word order is irrelevant.
func ShowNameMatchesFilename(showName, filename string) bool {
	nameWords := foldWords(showName)

	cleaned := filename
	cleaned = strings.ReplaceAll(cleaned, ".", " ")
	cleaned = strings.ReplaceAll(cleaned, "-", " ")
	cleaned = strings.ReplaceAll(cleaned, "_", " ")

	fileWords := make(map[string]bool)
	for _, word := range foldWords(cleaned) {
		fileWords[word] = true
	}

	for _, word := range nameWords {
		if !fileWords[word] {
			return false
		}
	}
	return true
}

func IsVideoFile(filename string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(filename))]
}

// titleCaseWord upper-cases the first rune and lower-cases the rest. This is
// deliberately naive: acronyms and particles get no special treatment.
func titleCaseWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

func foldWords(s string) []string {
	caser := cases.Fold()
	return strings.Fields(caser.String(s))
}
