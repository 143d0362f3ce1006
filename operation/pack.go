// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import "github.com/chainkit/txauth/util"

func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = appendUint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}
