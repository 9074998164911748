package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/javarefactor/tree"
)

// readSnapshot loads a tree.Snapshot from path, or from stdin when
// path is "" or "-". jrf never parses .java source itself; the
// snapshot is produced upstream by whatever parser a caller wires in
// front of this CLI.
func readSnapshot(path string) (*tree.Snapshot, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return tree.DecodeSnapshot(data)
}

func simpleName(fqn string) string {
	for i := len(fqn) - 1; i >= 0; i-- {
		if fqn[i] == '.' {
			return fqn[i+1:]
		}
	}
	return fqn
}
