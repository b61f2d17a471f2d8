package asm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aleksailic/ASM/internal"
)

// WriteListing renders the object listing: per-section relocation
// tables, the memdump of every non-empty section, the symbol table
// and the constant table.
func (a *Assembler) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)

	grouped := internal.NewHashVec[[]Relocation]()
	for _, rel := range a.Relocations {
		if entry, ok := grouped.Get(rel.Section); ok {
			entry.Value = append(entry.Value, rel)
		} else {
			grouped.Put(rel.Section, []Relocation{rel})
		}
	}
	for entry := range grouped.All() {
		fmt.Fprintf(bw, "#.ret.%s\n", entry.Key)
		fmt.Fprintf(bw, "#ofset\ttip\t\tvr[.%s]:\t\n", entry.Key)
		for _, rel := range entry.Value {
			fmt.Fprintf(bw, "0x%04X\t%s\t%d\n", rel.Offset, rel.Type, rel.Num)
		}
	}

	for entry := range a.Sections.All() {
		sec := entry.Value
		if sec.Counter == 0 {
			continue
		}
		fmt.Fprintf(bw, "#.%s (%d)\n", entry.Key, sec.Counter)
		dump := sec.Memdump()
		for i := 0; i+1 < len(dump); i += 2 {
			fmt.Fprintf(bw, "%s ", dump[i:i+2])
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "#tabela simbola\n")
	fmt.Fprintf(bw, "#ime\tsek\tvr.\tvid.\tr.b.\n")
	for entry := range a.Symbols.All() {
		visibility := "local"
		if !entry.Value.IsLocal {
			visibility = "global"
		}
		fmt.Fprintf(bw, "%s\t%s\t%d\t%s\t%d\n",
			entry.Key, entry.Value.Section, entry.Value.Offset, visibility, entry.Index)
	}

	fmt.Fprintf(bw, "#tabela konstanti\n")
	fmt.Fprintf(bw, "#ime\tvr.\tr.b.\n")
	for entry := range a.Constants.All() {
		fmt.Fprintf(bw, "%s\t%d\t%d\n", entry.Key, entry.Value.Value, entry.Index)
	}

	return bw.Flush()
}
