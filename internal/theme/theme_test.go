package theme

import (
	"testing"

	"github.com/dylanreedx/exa-go/internal/style"
)

func redStyleForTest() style.Style  { return style.Fg(style.ColourRed) }
func blueStyleForTest() style.Style { return style.Fg(style.ColourBlue) }

func TestBuildNeverUsesColoursYieldsPlainStyles(t *testing.T) {
	th := Build(Options{UseColours: ColoursNever}, true)
	if !th.Styles.FileKinds.Directory.Plain() {
		t.Fatal("expected plain directory style when colours are never used")
	}
}

func TestBuildAutomaticWithoutTTYYieldsPlainStyles(t *testing.T) {
	th := Build(Options{UseColours: ColoursAutomatic}, false)
	if !th.Styles.Punctuation.Plain() {
		t.Fatal("expected plain styles when automatic and not a tty")
	}
}

func TestBuildAlwaysAppliesDefaultPalette(t *testing.T) {
	th := Build(Options{UseColours: ColoursAlways}, false)
	if th.Styles.FileKinds.Directory.Plain() {
		t.Fatal("expected non-plain directory style under default palette")
	}
}

func TestLSColoursOverrideDefault(t *testing.T) {
	th := Build(Options{
		UseColours:  ColoursAlways,
		Definitions: Definitions{LS: "di=1;35"},
	}, false)

	got := th.Styles.FileKinds.Directory
	if !got.Bold || !got.HasForeground || got.Foreground.Named != 5 {
		t.Fatalf("expected bold magenta directory style, got %+v", got)
	}
}

func TestEXAResetDisablesDefaultExtensions(t *testing.T) {
	withDefaults := Build(Options{UseColours: ColoursAlways}, false)
	if !withDefaults.Extensions.IsNonEmpty() {
		t.Fatal("expected default extension classifier to be non-empty")
	}

	reset := Build(Options{
		UseColours:  ColoursAlways,
		Definitions: Definitions{EXA: "reset:rs=1;32"},
	}, false)
	if _, ok := reset.Extensions.ColourFile("photo.png"); ok {
		t.Fatal("expected reset to drop the default png mapping")
	}
}

func TestExtensionMappingReverseOrderWins(t *testing.T) {
	exts := &ExtensionMappings{}
	exts.add("log", redStyleForTest())
	exts.add("log", blueStyleForTest())

	got, ok := exts.ColourFile("app.log")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != blueStyleForTest() {
		t.Fatalf("expected the later rule to win, got %+v", got)
	}
}
