package shell

import (
	"fmt"

	"github.com/flynn/go-docopt"
)

func init() {
	register("cd", runCd, `
usage: cd [--] <path>

Change the current object.

A path is a list of keys separated by "/", each naming an object. A
leading "/" starts from the root of the current frame, ".." goes up one
level and stays at the root when already there.

Examples:

	> cd servers/main
	/servers/main> cd ../backup
	/servers/backup> cd /
`)
	register("cde", runCde, `
usage: cde [--] <key> <index>

Change the current object to an element of an array.

The element at <index> of the array stored at <key> must be an object.
Unlike load, the previous location is not saved, and ".." leads back to
the object holding the array.
`)
	register("pwd", runPwd, `
usage: pwd

Print the current location.
`)
	register("load", runLoad, `
usage: load [--] <key> [<index>]

Save the current location and enter an object.

The object is the value stored at <key>, or the element at <index> of the
array stored there. It becomes the root of a new frame: "cd /" returns to
it and ".." never leaves it. Use unload to return to the saved location.
`)
	register("unload", runUnload, `
usage: unload

Return to the location saved by the last load.
`)
}

func runCd(s *Shell, args *docopt.Args) error {
	return s.nav.Cd(args.String["<path>"])
}

func runCde(s *Shell, args *docopt.Args) error {
	index, err := parseInt("index", args.String["<index>"])
	if err != nil {
		return err
	}
	return s.nav.CdElem(args.String["<key>"], index)
}

func runPwd(s *Shell, args *docopt.Args) error {
	fmt.Fprintln(s.out, s.nav.Pwd())
	return nil
}

func runLoad(s *Shell, args *docopt.Args) error {
	key := args.String["<key>"]
	if arg := args.String["<index>"]; arg != "" {
		index, err := parseInt("index", arg)
		if err != nil {
			return err
		}
		return s.nav.Push(key, index, true)
	}
	return s.nav.Push(key, 0, false)
}

func runUnload(s *Shell, args *docopt.Args) error {
	return s.nav.Pop()
}
