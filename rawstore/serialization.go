// Copyright 2025 The Patch-BOE Authors
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


package rawstore

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/guillermop2002/Patch-Boe/core"
)

// ArchivedDocument is the stored unit: the raw document plus the
// metadata needed for change detection.
type ArchivedDocument struct {
	Doc        core.RawDocument
	Checksum   uint64
	ArchivedAt time.Time
}

// archivedDocumentSer serializes ArchivedDocument with the MUS format.
type archivedDocumentSer struct{}

// ArchivedDocumentMUS is the MUS serializer for ArchivedDocument.
var ArchivedDocumentMUS = archivedDocumentSer{}

func (archivedDocumentSer) Marshal(v ArchivedDocument, bs []byte) (n int) {
	n = ord.String.Marshal(v.Doc.ID, bs)
	n += ord.String.Marshal(v.Doc.Title, bs[n:])
	n += ord.String.Marshal(v.Doc.Content, bs[n:])
	n += varint.Uint64.Marshal(v.Checksum, bs[n:])
	n += varint.Int64.Marshal(v.ArchivedAt.UnixMicro(), bs[n:])
	return
}

func (archivedDocumentSer) Unmarshal(bs []byte) (v ArchivedDocument, n int, err error) {
	var n1 int
	v.Doc.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Doc.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Doc.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Checksum, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ArchivedAt = time.UnixMicro(micros).UTC()
	return
}

func (archivedDocumentSer) Size(v ArchivedDocument) (size int) {
	size = ord.String.Size(v.Doc.ID)
	size += ord.String.Size(v.Doc.Title)
	size += ord.String.Size(v.Doc.Content)
	size += varint.Uint64.Size(v.Checksum)
	size += varint.Int64.Size(v.ArchivedAt.UnixMicro())
	return
}

// MarshalArchivedDocument serializes an ArchivedDocument to bytes.
func MarshalArchivedDocument(doc *ArchivedDocument) []byte {
	buf := make([]byte, ArchivedDocumentMUS.Size(*doc))
	ArchivedDocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalArchivedDocument deserializes an ArchivedDocument from bytes.
func UnmarshalArchivedDocument(data []byte) (*ArchivedDocument, error) {
	doc, _, err := ArchivedDocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
