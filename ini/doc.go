// Package ini reads and writes INI documents.
//
// Documents are held as map[string]interface{} where nested maps and slices
// become bracket keys when encoded:
//
//	ini.Marshal(map[string]interface{}{"test1": []interface{}{8, 9, 855}}, false)
//	// test1[] = "8"
//	// test1[] = "9"
//	// test1[] = "855"
//
// With sections enabled, top-level maps and slices become [section] blocks
// instead. Keys are written in sorted order, values are always quoted and
// booleans are written as "1" or left empty.
package ini
