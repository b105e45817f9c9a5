package service

import (
	"food-wastage-api/internal/entity"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// columnsOf lists the JSON names of a row type in field order. Embedded
// structs contribute their own fields in place.
func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		columns = append(columns, name)
	}

	return columns
}

func newReport(def *reportDef, generatedAt time.Time, rows any, message string) *entity.Report {
	return &entity.Report{
		Name:        def.name,
		Title:       def.title,
		Group:       def.group,
		SnapshotId:  uuid.New(),
		GeneratedAt: generatedAt,
		Columns:     def.columns,
		Rows:        rows,
		RowCount:    reflect.ValueOf(rows).Len(),
		Message:     message,
	}
}

func mapDescriptor(def *reportDef) entity.ReportDescriptor {
	return entity.ReportDescriptor{
		Name:    def.name,
		Title:   def.title,
		Group:   def.group,
		Filters: def.filters,
	}
}
