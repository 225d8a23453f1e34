package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServicesWriteThroughAggregatesOnly(t *testing.T) {
	rep, err := audit(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if rep.RepoWriteCallsites != 0 {
		t.Fatalf("direct repo writes in services: %+v", rep.Residual)
	}
	if rep.AggregateWriteCallsites == 0 {
		t.Fatalf("expected at least one aggregate write call site")
	}
}

func TestAuditFlagsDirectRepoWrite(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "internal", "services")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	src := `package services

import "example.com/repos"

type yearService struct {
	years repos.YearRepo
}

func (s *yearService) Ensure(label string) {
	s.years.FindOrCreate(nil, label)
	s.years.GetByLabel(nil, label)
}
`
	if err := os.WriteFile(filepath.Join(dir, "year.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	rep, err := audit(root)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if rep.RepoWriteCallsites != 1 || len(rep.Residual) != 1 {
		t.Fatalf("want one residual write, got %+v", rep)
	}
	if got := rep.Residual[0].RepoWrites[0]; got != "years.FindOrCreate" {
		t.Fatalf("want=years.FindOrCreate got=%s", got)
	}
}
