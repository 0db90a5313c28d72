package setup

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/infra/db/dao"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into its own directory so the default config file
// lands there instead of the package dir.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func newTestUsecase(t *testing.T, dir string) *setupUsecase {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(dir, "database", "test.db")
	cfg.DataSources.Customers = filepath.Join(dir, "data_sources", "customers.csv")
	cfg.DataSources.Loans = filepath.Join(dir, "data_sources", "loans.csv")
	cfg.DataSources.Transactions = filepath.Join(dir, "data_sources", "transactions.csv")
	cfg.Pipeline.ReportPath = filepath.Join(dir, "etl_report.json")
	cfg.Pipeline.BackupDir = filepath.Join(dir, "backups")
	cfg.Pipeline.RiskSeed = 42

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755))
	db, err := gorm.Open("sqlite3", cfg.Database.Path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &setupUsecase{cfg: cfg, dao: dao.NewDaoMethod(db), logger: log.New("test")}
}

func countCSVRows(t *testing.T, path string) int {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return len(records) - 1
}

func TestSetupPreparesWorkspace(t *testing.T) {
	dir := chdirTemp(t)
	u := newTestUsecase(t, dir)

	require.NoError(t, u.Setup())

	tables, err := u.dao.TableNames()
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"customers", "loans", "transactions", "risk_features", "portfolio_summary"},
		tables)

	assert.Equal(t, 1000, countCSVRows(t, u.cfg.DataSources.Customers))
	assert.Equal(t, 5000, countCSVRows(t, u.cfg.DataSources.Loans))
	assert.Equal(t, 20000, countCSVRows(t, u.cfg.DataSources.Transactions))

	assert.DirExists(t, u.cfg.Pipeline.BackupDir)
	assert.FileExists(t, filepath.Join(dir, consts.DefaultConfigFile))
}

func TestSetupKeepsExistingSources(t *testing.T) {
	dir := chdirTemp(t)
	u := newTestUsecase(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Dir(u.cfg.DataSources.Customers), 0755))
	for _, path := range []string{
		u.cfg.DataSources.Customers,
		u.cfg.DataSources.Loans,
		u.cfg.DataSources.Transactions,
	} {
		require.NoError(t, os.WriteFile(path, []byte("customer_id\nCUST000001\n"), 0644))
	}

	require.NoError(t, u.Setup())

	raw, err := os.ReadFile(u.cfg.DataSources.Customers)
	require.NoError(t, err)
	assert.Equal(t, "customer_id\nCUST000001\n", string(raw))
}

func TestSetupKeepsExistingConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	u := newTestUsecase(t, dir)

	existing := `{"server": {"port": "9999"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, consts.DefaultConfigFile), []byte(existing), 0644))

	require.NoError(t, u.Setup())

	raw, err := os.ReadFile(filepath.Join(dir, consts.DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, existing, string(raw))
}

func TestSampleDataIsReproducible(t *testing.T) {
	dir := chdirTemp(t)
	u := newTestUsecase(t, dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(u.cfg.DataSources.Customers), 0755))
	require.NoError(t, u.generateSampleData())
	first, err := os.ReadFile(u.cfg.DataSources.Loans)
	require.NoError(t, err)

	require.NoError(t, u.generateSampleData())
	second, err := os.ReadFile(u.cfg.DataSources.Loans)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
