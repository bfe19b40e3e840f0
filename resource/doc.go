// Package resource provides file and directory handles over a core.FS.
//
// A handle wraps a location and resolves it against the process working
// directory on every call. Handles never cache existence; only File keeps
// its content in memory between Load and Save.
//
// Directories enumerate their subtree through GetResources, which walks the
// tree depth-first, consults a filter.Filter for every entry and shapes the
// accepted entries into a flat Collection or a nested Tree:
//
//	dir := resource.NewDirectory("/srv/app")
//	res, err := dir.GetResources(filter.NewLeaf(
//	    filter.WithPattern(filter.MustGlob("*.php")),
//	))
//	if err != nil {
//	    return err
//	}
//	for _, key := range res.Collection().Keys() {
//	    r, _ := res.Collection().Get(key)
//	    fmt.Println(r.Location())
//	}
//
// # Working directory
//
// Directory.Chdir and Directory.GoBack change the operating system's working
// directory, which is read afresh whenever a relative location is resolved.
// Two handles that both call Chdir overwrite each other's view of the current
// directory; each GoBack restores only what its own handle recorded. Only
// local directories can be entered. Handles are not safe for concurrent use.
package resource
