package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleksailic/ASM/asm"
)

// runGolden assembles every .s file under dir and diffs the listing
// against the sibling .o file.
func runGolden(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var total, failed int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".s") {
			continue
		}
		total++

		source := filepath.Join(dir, name)
		golden := strings.TrimSuffix(source, ".s") + ".o"

		got, err := assembleListing(source)
		if err != nil {
			log.Printf("FAIL %v: %v", name, err)
			failed++
			continue
		}
		want, err := os.ReadFile(golden)
		if err != nil {
			log.Printf("FAIL %v: %v", name, err)
			failed++
			continue
		}
		if !bytes.Equal(got, want) {
			log.Printf("FAIL %v: listing differs from %v", name, golden)
			failed++
			continue
		}
		log.Printf("PASS %v", name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d golden tests failed", failed, total)
	}
	log.Printf("%d golden tests passed", total)
	return nil
}

func assembleListing(source string) ([]byte, error) {
	in, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	assembler := asm.New()
	assembler.Verbose = verbose
	if err = assembler.Assemble(in); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = assembler.WriteListing(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
