package report

// Kind tells the writer how to draw an element.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

type RGB struct {
	R, G, B int
}

var (
	colorBlack = RGB{}
	colorNavy  = RGB{R: 0, G: 51, B: 102}
)

// Element is one positioned item on a page. Coordinates and sizes are in
// millimetres from the top-left corner of an A4 page.
type Element struct {
	Kind Kind
	X    float64
	Y    float64
	W    float64
	H    float64

	Text      string
	FontSize  float64
	Color     RGB
	Border    bool
	Center    bool
	MultiLine bool

	ImagePath string
}

type Page struct {
	Name     string
	Elements []Element
}

type Document struct {
	Title  string
	Author string
	Pages  []Page
}

// Texts returns every text element of the page in order.
func (p Page) Texts() []string {
	out := make([]string, 0, len(p.Elements))
	for _, el := range p.Elements {
		if el.Kind == KindText {
			out = append(out, el.Text)
		}
	}
	return out
}

func (p Page) Images() []string {
	out := make([]string, 0, len(p.Elements))
	for _, el := range p.Elements {
		if el.Kind == KindImage {
			out = append(out, el.ImagePath)
		}
	}
	return out
}
