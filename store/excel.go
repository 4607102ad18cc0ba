package store

import (
	"strconv"

	"github.com/tableauio/jsonsh/node"
	"github.com/xuri/excelize/v2"
)

const excelSheet = "document"

var excelHeader = []string{"PATH", "TYPE", "VALUE"}

type excelRow struct {
	path  string
	kind  node.Kind
	value any
}

// MarshalToExcel marshals the given node to a workbook with one worksheet,
// holding one PATH/TYPE/VALUE row per leaf in document order. Empty objects
// and arrays are leaves too.
func MarshalToExcel(root *node.Node) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()
	// The newly created workbook will by default contain a worksheet named `Sheet1`.
	wb.SetSheetName("Sheet1", excelSheet)

	style, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"#E5E5E5"},
		},
	})
	if err != nil {
		return nil, err
	}
	for i, title := range excelHeader {
		axis, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := wb.SetCellValue(excelSheet, axis, title); err != nil {
			return nil, err
		}
		if err := wb.SetCellStyle(excelSheet, axis, axis, style); err != nil {
			return nil, err
		}
	}

	var rows []excelRow
	collectExcelRows(root, "", &rows)
	for j, row := range rows {
		cells := []any{row.path, row.kind.String(), row.value}
		for i, cell := range cells {
			axis, err := excelize.CoordinatesToCellName(i+1, j+2)
			if err != nil {
				return nil, err
			}
			if err := wb.SetCellValue(excelSheet, axis, cell); err != nil {
				return nil, err
			}
		}
	}
	wb.SetColWidth(excelSheet, "A", "A", 40)
	wb.SetColWidth(excelSheet, "C", "C", 40)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func collectExcelRows(n *node.Node, p string, rows *[]excelRow) {
	display := p
	if display == "" {
		display = "/"
	}
	switch n.Kind() {
	case node.ObjectNode:
		if len(n.Keys()) == 0 {
			*rows = append(*rows, excelRow{path: display, kind: node.ObjectNode, value: "{}"})
			return
		}
		n.Each(func(key string, value *node.Node) {
			collectExcelRows(value, p+"/"+key, rows)
		})
	case node.ArrayNode:
		if len(n.Elems()) == 0 {
			*rows = append(*rows, excelRow{path: display, kind: node.ArrayNode, value: "[]"})
			return
		}
		for i, elem := range n.Elems() {
			collectExcelRows(elem, p+"["+strconv.Itoa(i)+"]", rows)
		}
	case node.StringNode:
		s, _ := n.Text()
		*rows = append(*rows, excelRow{path: display, kind: node.StringNode, value: s})
	case node.NumberNode:
		var value any
		if f, err := n.Float(); err == nil {
			value = f
		} else {
			value, _ = n.Text()
		}
		*rows = append(*rows, excelRow{path: display, kind: node.NumberNode, value: value})
	case node.BoolNode:
		b, _ := n.Bool()
		*rows = append(*rows, excelRow{path: display, kind: node.BoolNode, value: b})
	default:
		*rows = append(*rows, excelRow{path: display, kind: node.NullNode, value: "null"})
	}
}
