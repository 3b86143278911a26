// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package croissant implements the dataset builder behind the build command.
//
// A Builder is constructed once per invocation from normalized Params and
// exposes a single blocking DownloadAndPrepare operation: load the JSON-LD
// description, resolve the selected record sets, fetch or map their source
// files, and write the records as sharded output in the requested format.
package croissant
