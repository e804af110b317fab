package report

import (
	"fmt"

	"github.com/riskibarqy/team-report/internal/chart"
	"github.com/riskibarqy/team-report/internal/domain/nextmatch"
	"github.com/riskibarqy/team-report/internal/domain/team"
)

const (
	PageCover       = "cover"
	PageGeneral     = "general"
	PagePoints      = "points"
	PageShots       = "shots"
	PageShotSplit   = "shot_split"
	PageDefense     = "defense"
	PageNextMatch   = "next_match"
	NoMatchesLeft   = "No matches left"
	NoPrediction    = "Prediction unavailable"
	titleCellWidth  = 80
	titleCellHeight = 10
)

// MatchCard is the next match with the local paths of both team logos.
// An empty logo path means the logo could not be fetched.
type MatchCard struct {
	Info  nextmatch.Info
	Logos [2]string
}

type Input struct {
	Team      team.Identity
	Season    int
	Author    string
	Artifacts chart.Artifacts
	TeamLogo  string
	NextMatch *MatchCard
}

// Compose lays out the report. It only arranges what it is given and never
// touches the filesystem.
func Compose(in Input) Document {
	return Document{
		Title:  fmt.Sprintf("%s - %d Season", in.Team.Name, in.Season),
		Author: in.Author,
		Pages: []Page{
			coverPage(in),
			generalPage(in.Artifacts),
			pointsPage(in.Artifacts),
			shotsPage(in.Artifacts),
			shotSplitPage(in.Artifacts),
			defensePage(in.Artifacts),
			nextMatchPage(in.NextMatch),
		},
	}
}

func coverPage(in Input) Page {
	return Page{Name: PageCover, Elements: []Element{
		{Kind: KindText, X: 35, Y: 60, W: 150, H: 30, FontSize: 30, Border: true, Center: true, MultiLine: true,
			Text: fmt.Sprintf("%s\n%d-%d Season", in.Team.Name, in.Season, in.Season+1)},
		image(in.TeamLogo, 60, 130, 100, in.Team.Name+" logo unavailable"),
		{Kind: KindText, X: 35, Y: 250, W: 150, H: 10, FontSize: 12, Center: true, MultiLine: true,
			Text: "Author\n" + in.Author},
	}}
}

func generalPage(a chart.Artifacts) Page {
	return Page{Name: PageGeneral, Elements: []Element{
		pageTitle("General Statistics"),
		heading("Players' General Information", 20, 30, 16),
		chartImage(a, chart.FileTablePlayers, 10, 45, 200),
		heading("Win Rate", 20, 170, 16),
		chartImage(a, chart.FileWinRate, 0, 185, 120),
		heading("Win Rate Home vs Away", 120, 140, 14),
		chartImage(a, chart.FileWinRateHome, 120, 155, 80),
		heading("Loss Rate Home vs Away", 120, 220, 14),
		chartImage(a, chart.FileWinRateAway, 120, 235, 80),
	}}
}

func pointsPage(a chart.Artifacts) Page {
	return Page{Name: PagePoints, Elements: []Element{
		pageTitle("Points Statistics"),
		heading("- Points", 20, 30, 16),
		chartImage(a, chart.FilePoints, 20, 45, 160),
		heading("- Points Per Minute", 20, 160, 16),
		chartImage(a, chart.FilePointsPerMinute, 20, 175, 160),
	}}
}

func shotsPage(a chart.Artifacts) Page {
	return Page{Name: PageShots, Elements: []Element{
		pageTitle("Shot Statistics"),
		heading("- Shot Accuracy", 20, 30, 16),
		chartImage(a, chart.FileShotAccuracy, 40, 45, 130),
		heading("Total Field Shots Made", 20, 120, 16),
		chartImage(a, chart.FileShotsMade, 40, 135, 130),
		heading("- Free Throw Percentage", 20, 210, 16),
		chartImage(a, chart.FileFreeThrowPercent, 40, 225, 130),
	}}
}

func shotSplitPage(a chart.Artifacts) Page {
	return Page{Name: PageShotSplit, Elements: []Element{
		pageTitle("Shot Statistics"),
		heading("- Two Pointers", 20, 30, 16),
		chartImage(a, chart.FileTwoPointers, 20, 45, 160),
		heading("- Three Pointers", 20, 160, 16),
		chartImage(a, chart.FileThreePointers, 20, 175, 160),
	}}
}

func defensePage(a chart.Artifacts) Page {
	return Page{Name: PageDefense, Elements: []Element{
		pageTitle("Defensive Statistics"),
		heading("- Defense", 20, 30, 16),
		chartImage(a, chart.FileDefense, 20, 45, 160),
		heading("- Defensive Stats by Minute", 20, 160, 16),
		chartImage(a, chart.FileDefenseByMinute, 20, 175, 160),
	}}
}

func nextMatchPage(card *MatchCard) Page {
	if card == nil {
		return Page{Name: PageNextMatch, Elements: []Element{
			pageTitle("Next Match Prediction"),
			heading(NoMatchesLeft, 20, 30, 16),
		}}
	}

	info := card.Info
	prediction := NoPrediction
	if winner, err := info.PredictedWinner(); err == nil {
		prediction = "The Predicted Winner is: " + winner
	}

	elements := []Element{pageTitle("Next Match Prediction")}
	for idx, x := range [2]float64{25, 105} {
		participant := heading(info.Teams[idx], x, 30, 16)
		participant.Border = true
		participant.Center = true
		odds := heading(info.Odds[idx], x, 110, 16)
		odds.Center = true

		elements = append(elements,
			participant,
			image(card.Logos[idx], x+5, 45, 70, info.Teams[idx]+" logo unavailable"),
			odds,
		)
	}
	elements = append(elements, heading(prediction, 25, 130, 14))
	if info.Date != "" {
		elements = append(elements, heading("Date: "+info.Date, 25, 145, 12))
	}

	return Page{Name: PageNextMatch, Elements: elements}
}

func pageTitle(text string) Element {
	el := heading(text, 40, 10, 20)
	el.Color = colorBlack
	return el
}

func heading(text string, x, y, size float64) Element {
	return Element{
		Kind:     KindText,
		X:        x,
		Y:        y,
		W:        titleCellWidth,
		H:        titleCellHeight,
		Text:     text,
		FontSize: size,
		Color:    colorNavy,
	}
}

func chartImage(a chart.Artifacts, file string, x, y, w float64) Element {
	path, _ := a.Path(file)
	return image(path, x, y, w, file+" unavailable")
}

// image falls back to a text placeholder when there is no file to place.
func image(path string, x, y, w float64, placeholder string) Element {
	if path == "" {
		el := heading(placeholder, x, y, 12)
		el.W = w
		el.Center = true
		return el
	}
	return Element{Kind: KindImage, X: x, Y: y, W: w, ImagePath: path}
}
