//
//  Copyright 2026 The Burgerlib authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

//go:build linux

package auto

import (
	"github.com/Olde-Skuul/burgerlib-sub014"
	"github.com/Olde-Skuul/burgerlib-sub014/platform/posix"
)

// Default returns the Linux PlatformAdapter.
func Default() burgerlib.PlatformAdapter {
	return posix.New(burgerlib.OsLinux, "Boot")
}
