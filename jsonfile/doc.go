// Package jsonfile reads and writes JSON documents stored in resource files.
//
// Objects decode to *Object, which keeps member order, so a document that is
// loaded, edited and saved only changes where it was edited. Numbers decode
// to json.Number and keep their exact text. Output is indented by two spaces
// and leaves '/', '<', '>' and '&' unescaped.
package jsonfile
