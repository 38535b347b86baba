package dump

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GormDumper emulates a dump through the live connection when no native tool
// is installed. The output is a plain SQL text file: one INSERT per row.
type GormDumper struct {
	db *gorm.DB
}

func (d *GormDumper) Dump(ctx context.Context, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "-- rentora export (emulated)\n-- generated at %s\n\n", time.Now().UTC().Format(time.RFC3339))

	tables, err := d.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return 0, err
	}
	sort.Strings(tables)

	for _, table := range tables {
		var rows []map[string]interface{}
		if err := d.db.WithContext(ctx).Table(table).Find(&rows).Error; err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "-- Table: %s (%d rows)\n", table, len(rows))
		for _, row := range rows {
			cols := make([]string, 0, len(row))
			for c := range row {
				cols = append(cols, c)
			}
			sort.Strings(cols)
			vals := make([]string, len(cols))
			for i, c := range cols {
				vals[i] = sqlValue(row[c])
			}
			fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES (%s);\n",
				table, strings.Join(cols, ", "), strings.Join(vals, ", "))
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return 0, err
	}
	if err := f.Sync(); err != nil {
		return 0, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

func sqlValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(x), "'", "''") + "'"
	case time.Time:
		return "'" + x.UTC().Format("2006-01-02 15:04:05") + "'"
	default:
		return fmt.Sprintf("%v", x)
	}
}
