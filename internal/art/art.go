// Package art is the static ASCII art repository behind the draw
// command. Lookups are case-insensitive by name.
package art

import (
	"sort"
	"strings"
)

var gallery = map[string][]string{
	"cat": {
		` /\_/\`,
		`( o.o )`,
		` > ^ <`,
	},
	"dog": {
		`  __`,
		`o-''|\_____/)`,
		` \_/|_)     )`,
		`    \  __  /`,
		`    (_/ (_/`,
	},
	"rocket": {
		`    /\`,
		`   /  \`,
		`  |    |`,
		`  | NASA|`,
		`  |    |`,
		` /| |  |\`,
		`/_|_|__|_\`,
		`   (  )`,
		`  (    )`,
		`   (  )`,
		`    ()`,
	},
	"skull": {
		`   _____`,
		`  /     \`,
		` | () () |`,
		`  \  ^  /`,
		`   |||||`,
		`   |||||`,
	},
	"heart": {
		` /\ /\`,
		`(  V  )`,
		` \   /`,
		`  \ /`,
		`   V`,
	},
	"dragon": {
		`           __----~~~~~~~~~~~------___`,
		`          .  .   ~~//====......          __--~ ~~`,
		`          -.            \_|//     |||\\  ~~~~~~::::... /~`,
		`       ___-==_       _-~o~  \/    |||  \\            _/~~-`,
		`__---~~~.==~||\=_    -_--~/_-~|-   |\\   \\        _/~`,
		`_-~~     .=~    |  \\-_    '-~7  /-   /  ||    \      /`,
		`  .~       .~    |   \\ -_    /  /-   /   ||      \   /`,
		` /  ____  /      |     \\ ~-_/  /|- _/   .||       \ /`,
		` |~~    ~~|--~~~~--_ \     ~==-/   | \~--===~~        .\`,
		`          '         ~-|      /|    |-~\~~       __--~~`,
	},
	"coffee": {
		`      ( (`,
		`       ) )`,
		`    ........`,
		`    |      |]`,
		`    \      /`,
		`     '----'`,
	},
	"ghost": {
		`  .-.`,
		` (o o)`,
		` | O \`,
		`  \   \`,
		`   '~~~'`,
	},
	"sword": {
		`          />`,
		` ()      //---------------->`,
		`(*)OXOXO(*>`,
		` ()      \\--------------->`,
		`          \>`,
	},
	"diamond": {
		`   /\`,
		`  /  \`,
		` /    \`,
		` \    /`,
		`  \  /`,
		`   \/`,
	},
}

// Lookup returns the art body for name, or false when unknown.
func Lookup(name string) ([]string, bool) {
	body, ok := gallery[strings.ToLower(strings.TrimSpace(name))]
	return body, ok
}

// Names returns every known art name, sorted.
func Names() []string {
	names := make([]string, 0, len(gallery))
	for name := range gallery {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
