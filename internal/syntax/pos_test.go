package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"with filename", NewPos("robot.bl", 10, 5), "robot.bl:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"token queue", tokenPos(7), "tokens#7"},
		{"no position", NoPos, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	if NoPos.IsValid() {
		t.Error("NoPos.IsValid() = true")
	}
	if !NewPos("a.bl", 1, 1).IsValid() {
		t.Error("1:1 should be valid")
	}
	if !tokenPos(1).IsValid() {
		t.Error("tokens#1 should be valid")
	}
}

func TestSourceNewline(t *testing.T) {
	src := newSource("test", stringsReader("a\nb"), nil)

	if src.ch != 'a' || src.line != 1 || src.col != 1 {
		t.Errorf("got ch=%q pos=%d:%d, want ch='a' pos=1:1", src.ch, src.line, src.col)
	}
	src.nextch()
	if src.ch != '\n' || src.line != 1 || src.col != 2 {
		t.Errorf("got ch=%q pos=%d:%d, want ch='\\n' pos=1:2", src.ch, src.line, src.col)
	}
	src.nextch()
	if src.ch != 'b' || src.line != 2 || src.col != 1 {
		t.Errorf("got ch=%q pos=%d:%d, want ch='b' pos=2:1", src.ch, src.line, src.col)
	}
	src.nextch()
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourceInvalidUTF8(t *testing.T) {
	var msgs []string
	errh := func(line, col uint32, msg string) { msgs = append(msgs, msg) }
	newSource("test", stringsReader("\xff"), errh)
	if len(msgs) != 1 || msgs[0] != "invalid UTF-8 encoding" {
		t.Errorf("errors = %v, want [invalid UTF-8 encoding]", msgs)
	}
}
