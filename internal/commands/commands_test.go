package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerform/internal/accounts"
	"github.com/cleared-dev/ledgerform/internal/commands"
	"github.com/cleared-dev/ledgerform/internal/config"
	"github.com/cleared-dev/ledgerform/internal/importer"
	"github.com/cleared-dev/ledgerform/internal/ledger"
)

func runLedgerform(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func initProject(t *testing.T, locale string) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runLedgerform(t, "init", dir, "--locale", locale)
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initProject(t, "en")

	for _, name := range []string{config.FileName, "accounts.csv", "grid.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "%s should exist", name)
	}
	info, err := os.Stat(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_Config(t *testing.T) {
	dir := initProject(t, "ja")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.Form.Locale)
	assert.Equal(t, "accounts.csv", cfg.AccountsFile)
}

func TestInit_AccountsAndGrid(t *testing.T) {
	dir := initProject(t, "ja")

	svc, err := accounts.Load(filepath.Join(dir, "accounts.csv"))
	require.NoError(t, err)
	assert.Len(t, svc.Names(), 11)
	assert.True(t, svc.Exists("売上"))

	grid, err := importer.DefaultRegistry().ReadFile(filepath.Join(dir, "grid.csv"), "")
	require.NoError(t, err)
	assert.Len(t, grid, 10)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := initProject(t, "en")
	_, err := runLedgerform(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_UnknownLocale(t *testing.T) {
	_, err := runLedgerform(t, "init", t.TempDir(), "--locale", "fr")
	assert.Error(t, err)
}

func TestTemplate(t *testing.T) {
	dir := initProject(t, "en")
	cfgPath := filepath.Join(dir, config.FileName)

	out, err := runLedgerform(t, "template", "--config", cfgPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, importer.Header, lines[0])
	assert.Len(t, lines, 11, "header + 10 blank rows")

	out, err = runLedgerform(t, "template", "--config", cfgPath, "--rows", "2", "--format", "json")
	require.NoError(t, err)
	grid, err := (&importer.JSONParser{}).Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, grid, 2)

	_, err = runLedgerform(t, "template", "--config", cfgPath, "--format", "xlsx")
	assert.Error(t, err)
}

func writeGrid(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExport_Success(t *testing.T) {
	dir := initProject(t, "en")
	grid := writeGrid(t, dir, "filled.csv", importer.Header+"\n"+
		",,,,\n"+
		"2024-02-01,expense,supplies,300,pens\n"+
		"2024-02-02,income,sales,12000,\n")

	out, err := runLedgerform(t, "export", grid, "--config", filepath.Join(dir, config.FileName))
	require.NoError(t, err, out)
	assert.Contains(t, out, "saving 2 rows.")

	files, err := os.ReadDir(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Regexp(t, regexp.MustCompile(`^ledger_\d{8}_\d{4}\.csv$`), files[0].Name())

	f, err := os.Open(filepath.Join(dir, "exports", files[0].Name()))
	require.NoError(t, err)
	defer f.Close()
	header, records, err := ledger.ReadRecords(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"recordedDate", "transactionDate", "category", "account", "amount", "memo"}, header)
	require.Len(t, records, 2)
	assert.Equal(t, "12,000", records[1][4])
}

func TestExport_OutFlagJSON(t *testing.T) {
	dir := initProject(t, "ja")
	grid := writeGrid(t, dir, "filled.json",
		`{"rows":[{"date":"2024-02-01","category":"expense","account":"消耗品費","amount":300,"memo":"ペン"}]}`)
	outDir := filepath.Join(t.TempDir(), "elsewhere")

	out, err := runLedgerform(t, "export", grid, "--config", filepath.Join(dir, config.FileName), "--out", outDir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1件のデータを保存します。")

	files, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasPrefix(files[0].Name(), "帳簿_"))
}

func TestExport_IncompleteRow(t *testing.T) {
	dir := initProject(t, "en")
	grid := writeGrid(t, dir, "filled.csv", importer.Header+"\n"+
		"2024-01-05,income,sales,5000,jan sale\n"+
		",,,,\n"+
		"2024-01-06,expense,,2000,\n")

	_, err := runLedgerform(t, "export", grid, "--config", filepath.Join(dir, config.FileName))
	require.Error(t, err)
	assert.Equal(t, "row 2 has missing fields.", err.Error())

	files, err := os.ReadDir(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	assert.Empty(t, files, "nothing is written on a warning")
}

func TestExport_NoData(t *testing.T) {
	dir := initProject(t, "en")
	_, err := runLedgerform(t, "export", filepath.Join(dir, "grid.csv"), "--config", filepath.Join(dir, config.FileName))
	require.Error(t, err)
	assert.Equal(t, "nothing to save.", err.Error())
}

func TestExport_UnknownAccount(t *testing.T) {
	dir := initProject(t, "en")
	grid := writeGrid(t, dir, "filled.csv", importer.Header+"\n2024-01-05,income,casino,5000,\n")

	_, err := runLedgerform(t, "export", grid, "--config", filepath.Join(dir, config.FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestExport_MissingGrid(t *testing.T) {
	dir := initProject(t, "en")
	_, err := runLedgerform(t, "export", filepath.Join(dir, "nope.csv"), "--config", filepath.Join(dir, config.FileName))
	assert.Error(t, err)
}

func TestServe_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeGrid(t, dir, config.FileName, "log:\n  format: xml\n")
	_, err := runLedgerform(t, "serve", "--config", cfgPath)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runLedgerform(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
