package harvest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/mind-engage/showquiz/internal/episode"
)

const (
	minRowCells   = 4
	minTitleLen   = 3
	minSummaryLen = 50
	maxSummaryLen = 200
)

var (
	hasDigit   = regexp.MustCompile(`\d+`)
	allDigits  = regexp.MustCompile(`^\d+$`)
	edgeQuotes = regexp.MustCompile(`^["']|["']$`)
)

// ParseEpisodeTables extracts one record per wikitable row that yields a title.
func ParseEpisodeTables(doc *goquery.Document) []episode.Episode {
	var eps []episode.Episode
	doc.Find("table.wikitable").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return // header
			}
			cells := row.ChildrenFiltered("td, th")
			if cells.Length() < minRowCells {
				return
			}
			if ep, ok := parseRow(cells, len(eps)); ok {
				eps = append(eps, ep)
			}
		})
	})
	return eps
}

func parseRow(cells *goquery.Selection, seen int) (episode.Episode, bool) {
	var number, title, summary string

	cells.Slice(0, minRowCells).Each(func(_ int, cell *goquery.Selection) {
		text := cellText(cell)
		if number == "" && hasDigit.MatchString(text) {
			number = text
		}
		if title != "" || utf8.RuneCountInString(text) <= minTitleLen {
			return
		}
		elem := cell.Find("b, i").First()
		if elem.Length() == 0 {
			elem = cell
		}
		candidate := edgeQuotes.ReplaceAllString(cellText(elem), "")
		if utf8.RuneCountInString(candidate) > minTitleLen && !allDigits.MatchString(candidate) {
			title = candidate
		}
	})

	cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := cellText(cell)
		if utf8.RuneCountInString(text) <= minSummaryLen {
			return true
		}
		if r := []rune(text); len(r) > maxSummaryLen {
			text = string(r[:maxSummaryLen]) + "..."
		}
		summary = text
		return false
	})

	if title == "" {
		return episode.Episode{}, false
	}
	if number == "" {
		number = fmt.Sprintf("Episode %d", seen+1)
	}
	if summary == "" {
		summary = "Rick and Morty episode: " + title
	}
	return episode.Episode{
		EpisodeNumber: number,
		Title:         title,
		Summary:       summary,
		Characters:    []string{"Rick Sanchez", "Morty Smith"},
		Quotes:        []string{},
	}, true
}

func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
