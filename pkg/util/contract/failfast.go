// Copyright 2021-2024, Strata Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contract

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/golang/glog"
)

// failfast logs and aborts the process in a way that is friendly to debugging.
func failfast(msg string) {
	if v := flag.Lookup("logtostderr"); v != nil {
		if g, isgettable := v.Value.(flag.Getter); isgettable {
			if enabled, isbool := g.Get().(bool); isbool && enabled {
				// Print the stack to stderr anytime glog verbose logging is enabled, since glog won't.
				fmt.Fprintf(os.Stderr, "fatal: %v\n", msg)
				debug.PrintStack()
			}
		}
	}
	glog.Fatal(msg)
}
