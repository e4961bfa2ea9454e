package keyboard

import "testing"

func TestInlineButtonsNPerRow(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "a", Unique: "vote", Data: "1|a"},
		{Text: "b", Unique: "vote", Data: "1|b"},
		{Text: "c", Unique: "results", Data: "1"},
	}

	markup := InlineButtonsNPerRow(buttons, 2)
	rows := markup.InlineKeyboard
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("row sizes = %d, %d, want 2, 1", len(rows[0]), len(rows[1]))
	}
	if rows[1][0].Text != "c" {
		t.Fatalf("trailing row button = %q, want %q", rows[1][0].Text, "c")
	}
}

func TestInlineButtonsRowKeepsOneRow(t *testing.T) {
	markup := InlineButtonsRow(
		InlineBtn{Text: "a", Unique: "vote", Data: "1|a"},
		InlineBtn{Text: "b", Unique: "vote", Data: "1|b"},
	)
	rows := markup.InlineKeyboard
	if len(rows) != 1 || len(rows[0]) != 2 {
		t.Fatalf("got %d rows, want a single row of 2", len(rows))
	}
}

func TestInlineButtonsNPerRowSingleColumn(t *testing.T) {
	buttons := []InlineBtn{
		{Text: "a", Unique: "vote", Data: "1|a"},
		{Text: "b", Unique: "vote", Data: "1|b"},
	}
	markup := InlineButtonsNPerRow(buttons, 0)
	if got := len(markup.InlineKeyboard); got != 2 {
		t.Fatalf("got %d rows, want one button per row", got)
	}
}
