package utils

import "time"

// ToolUserAgent identifies assetforge on every outbound request.
const ToolUserAgent = "Mozilla/5.0 (compatible; assetforge/1.0)"

// DefaultTimeout bounds one whole download, connect included.
const DefaultTimeout = 60 * time.Second
