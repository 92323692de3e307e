package options

import "testing"

func testTable() Args {
	return Args{
		{Flag: ShortFlag('l'), TakesValue: Forbidden},
		{Flag: ShortFlag('a'), TakesValue: Forbidden},
		{Flag: ShortFlag('b'), TakesValue: Forbidden},
		{Flag: ShortFlag('c'), TakesValue: Necessary()},
		{Flag: ShortFlag('x'), TakesValue: Necessary()},
		{Flag: Both('w', "width"), TakesValue: Necessary()},
		{Flag: LongFlag("color"), TakesValue: Necessary()},
		{Flag: LongFlag("classify"), TakesValue: Forbidden},
	}
}

func TestShortClusterWithTrailingValueFlag(t *testing.T) {
	m, err := Parse([]string{"-lctwo"}, testTable(), UseLastArguments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Frozen) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(m.Frozen), m.Frozen)
	}
	if m.Frozen[0].Flag.Short != 'l' || m.Frozen[0].HasValue {
		t.Fatalf("expected bare -l first, got %+v", m.Frozen[0])
	}
	if m.Frozen[1].Flag.Short != 'c' || !m.Frozen[1].HasValue || m.Frozen[1].Value != "two" {
		t.Fatalf("expected -c=two, got %+v", m.Frozen[1])
	}
}

func TestShortClusterAllValuelessFlags(t *testing.T) {
	m, err := Parse([]string{"-lab"}, testTable(), UseLastArguments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Frozen) != 3 {
		t.Fatalf("expected 3 matches, got %+v", m.Frozen)
	}
}

func TestShortValueFromNextArg(t *testing.T) {
	m, err := Parse([]string{"-x", "42"}, testTable(), UseLastArguments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, has, err := m.Get(ShortFlag('x'))
	if err != nil || !has || val != "42" {
		t.Fatalf("expected x=42, got val=%q has=%v err=%v", val, has, err)
	}
}

func TestLongFlagWithEquals(t *testing.T) {
	m, err := Parse([]string{"--color=always"}, testTable(), UseLastArguments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, has, _ := m.Get(LongFlag("color"))
	if !has || val != "always" {
		t.Fatalf("expected color=always, got %q", val)
	}
}

func TestLongFlagForbiddenValueErrors(t *testing.T) {
	_, err := Parse([]string{"--classify=yes"}, testTable(), UseLastArguments)
	var pe *ParseError
	if err == nil {
		t.Fatal("expected error")
	}
	if pe, _ = err.(*ParseError); pe == nil || pe.Kind != ErrForbiddenValue {
		t.Fatalf("expected ErrForbiddenValue, got %v", err)
	}
}

func TestDoubleDashFreezesPositionals(t *testing.T) {
	m, err := Parse([]string{"-l", "--", "-a", "file"}, testTable(), UseLastArguments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Positional) != 2 || m.Positional[0] != "-a" || m.Positional[1] != "file" {
		t.Fatalf("expected [-a file] positional, got %v", m.Positional)
	}
}

func TestUseLastArgumentsTakesRightmost(t *testing.T) {
	m, _ := Parse([]string{"--color=always", "--color=never"}, testTable(), UseLastArguments)
	val, _, err := m.Get(LongFlag("color"))
	if err != nil || val != "never" {
		t.Fatalf("expected last value 'never', got %q err=%v", val, err)
	}
}

func TestComplainAboutRedundantArgumentsErrors(t *testing.T) {
	m, _ := Parse([]string{"--color=always", "--color=never"}, testTable(), ComplainAboutRedundantArguments)
	_, _, err := m.Get(LongFlag("color"))
	var pe *ParseError
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	if pe, _ = err.(*ParseError); pe == nil || pe.Kind != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCountIgnoresStrictness(t *testing.T) {
	m, _ := Parse([]string{"-l", "-l"}, testTable(), ComplainAboutRedundantArguments)
	if m.Count(ShortFlag('l')) != 2 {
		t.Fatalf("expected count 2, got %d", m.Count(ShortFlag('l')))
	}
}
