package options

import "testing"

func parseAndDeduce(t *testing.T, argv []string, env Env) (Config, error) {
	t.Helper()
	m, err := Parse(argv, Table(), UseLastArguments)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return Deduce(m, UseLastArguments, env)
}

func TestConflictLongAcrossWithoutGrid(t *testing.T) {
	_, err := parseAndDeduce(t, []string{"-l", "-x"}, Env{})
	if err == nil {
		t.Fatal("expected conflict error")
	}
}

func TestLongAcrossWithGridIsFine(t *testing.T) {
	_, err := parseAndDeduce(t, []string{"-l", "-x", "-G"}, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecurseAndListDirsConflict(t *testing.T) {
	_, err := parseAndDeduce(t, []string{"-R", "-d"}, Env{})
	if err == nil {
		t.Fatal("expected conflict error")
	}
}

func TestDirActionDefaultsToList(t *testing.T) {
	cfg, err := parseAndDeduce(t, nil, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DirAction != DirList {
		t.Fatalf("expected DirList, got %v", cfg.DirAction)
	}
}

func TestDirActionTree(t *testing.T) {
	cfg, err := parseAndDeduce(t, []string{"-T"}, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DirAction != DirTree {
		t.Fatalf("expected DirTree, got %v", cfg.DirAction)
	}
}

func TestAllTwiceEnablesDotDot(t *testing.T) {
	cfg, err := parseAndDeduce(t, []string{"-a", "-a"}, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Filter.DotFilter != 2 {
		t.Fatalf("expected DotFilterDotfilesAndDotDot, got %v", cfg.Filter.DotFilter)
	}
}

func TestDefaultViewIsGridWhenWidthKnown(t *testing.T) {
	cols := 80
	cfg, err := parseAndDeduce(t, nil, Env{Columns: &cols})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.View != ViewGrid {
		t.Fatalf("expected ViewGrid, got %v", cfg.View)
	}
}

func TestDefaultViewIsLinesWhenWidthUnknown(t *testing.T) {
	cfg, err := parseAndDeduce(t, nil, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.View != ViewLines {
		t.Fatalf("expected ViewLines, got %v", cfg.View)
	}
}

func TestLongModeWithoutGridIsDetailsView(t *testing.T) {
	cfg, err := parseAndDeduce(t, []string{"-l"}, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.View != ViewDetails {
		t.Fatalf("expected ViewDetails, got %v", cfg.View)
	}
}

func TestLongOnlyFlagWithoutLongIsUselessUnderComplain(t *testing.T) {
	m, err := Parse([]string{"--git"}, Table(), ComplainAboutRedundantArguments)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = Deduce(m, ComplainAboutRedundantArguments, Env{})
	if err == nil {
		t.Fatal("expected useless-flag error")
	}
}

func TestTimeStyleParsed(t *testing.T) {
	cfg, err := parseAndDeduce(t, []string{"-l", "--time-style", "iso"}, Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TimeStyle != TimeStyleISO {
		t.Fatalf("expected TimeStyleISO, got %v", cfg.TimeStyle)
	}
}

func TestColorAutomaticAliasesAcceptBothSpellings(t *testing.T) {
	cfg1, _ := parseAndDeduce(t, []string{"--color=auto"}, Env{})
	cfg2, _ := parseAndDeduce(t, []string{"--color=automatic"}, Env{})
	if cfg1.Theme.UseColours != cfg2.Theme.UseColours {
		t.Fatalf("expected auto and automatic to resolve the same, got %v vs %v", cfg1.Theme.UseColours, cfg2.Theme.UseColours)
	}
}
