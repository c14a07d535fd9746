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

package burgerlib

// Feature describes an optional capability of a PlatformAdapter.
type Feature uint32

const (
	// FeatLongFilenames indicates the adapter can address names longer
	// than the MS-DOS 8.3 limit.
	FeatLongFilenames Feature = 1 << iota

	// FeatDeviceNumbers indicates the adapter supports ".D<n>:" device
	// numbering (drive letters on MS-DOS/Windows).
	FeatDeviceNumbers

	// FeatVolumeLabels indicates the adapter resolves ":vol:" by matching
	// a mounted volume name.
	FeatVolumeLabels

	// FeatUNC indicates the adapter emits/parses UNC-style "\\host\share".
	FeatUNC

	// FeatResourceFork marks the adapter for a host whose files carry
	// classic-MacOS creator/file-type metadata (the Darwin posix adapter).
	// No adapter in this module reads or writes that metadata; its
	// CreatorAndFileType reports ErrNotSupportedOnThisPlatform.
	FeatResourceFork
)

// Featurer is the interface that wraps the Features and HasFeature methods,
// implemented by every PlatformAdapter.
type Featurer interface {
	// Features returns the set of features provided by the adapter.
	Features() Feature

	// HasFeature returns true if the adapter provides a given feature.
	HasFeature(feature Feature) bool
}

// FeaturesFn provides Featurer to an embedding adapter.
type FeaturesFn struct {
	features Feature
}

// Features returns the set of features provided by the adapter.
func (f *FeaturesFn) Features() Feature {
	return f.features
}

// HasFeature returns true if the adapter provides a given feature.
func (f *FeaturesFn) HasFeature(feature Feature) bool {
	return f.features&feature == feature
}

// SetFeatures sets the features of the adapter. It is called once, by the
// adapter's constructor.
func (f *FeaturesFn) SetFeatures(features Feature) {
	f.features = features
}
