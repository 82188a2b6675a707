// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"github.com/editbuf/editbuf/internal/document"
	"github.com/editbuf/editbuf/internal/protocol"
)

func HandleFromDocumentURI(docUri protocol.DocumentURI) document.Handle {
	return document.HandleFromURI(string(docUri))
}
