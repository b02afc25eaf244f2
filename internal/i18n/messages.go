package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	MsgDescription      = "Fuzzy bookmark manager for files and directories."
	MsgOptionFiles      = "Only operate on file bookmarks"
	MsgOptionDirs       = "Only operate on directory bookmarks"
	MsgOptionMulti      = "Allow multiple selection"
	MsgOptionCopy       = "Copy the selection to the clipboard"
	MsgOptionDryRun     = "Show what would be removed without writing"
	MsgOptionCmd        = "Override the shorthand command alias"
	MsgOptionNoCmd      = "Do not define any alias function"
	MsgCmdList          = "List bookmarks"
	MsgCmdAdd           = "Add path(s) to bookmarks"
	MsgCmdRemove        = "Remove path(s) from bookmarks"
	MsgCmdSelect        = "Interactively select bookmark(s) using fzf"
	MsgCmdQuery         = "Query bookmark matching a pattern using fzf"
	MsgCmdFix           = "Remove bookmarks that no longer exist"
	MsgCmdClear         = "Clear all bookmarks"
	MsgCmdEdit          = "Edit bookmark file using $EDITOR"
	MsgCmdInit          = "Generate shell integration script for zsh / fish"
	MsgCmdExport        = "Export bookmarks to an HTML bookmark file"
	MsgCmdImport        = "Import file:// bookmarks from an HTML bookmark file"
	MsgAddedTo          = "Added to: %s"
	MsgTotalBookmarks   = "Total bookmarks: %d"
	MsgRemovedEntries   = "removed %d entries"
	MsgStaleEntry       = "%-9s %s"
	MsgCleared          = "bookmarks deleted!"
	MsgExported         = "Exported %d bookmarks to %s"
	MsgImported         = "Imported %d paths from %s"
	MsgClipboardFailed  = "warning: could not copy to clipboard: %v"
	MsgConfigFailed     = "warning: using default config: %v"
	MsgUnsupportedShell = "Unsupported shell: %s. Expected 'zsh' or 'fish'."
)

var zhHans = map[string]string{
	MsgDescription:      "面向文件和目录的模糊书签管理工具。",
	MsgOptionFiles:      "仅操作文件类型书签",
	MsgOptionDirs:       "仅操作目录类型书签",
	MsgOptionMulti:      "允许多选",
	MsgOptionCopy:       "将选择结果复制到剪贴板",
	MsgOptionDryRun:     "仅显示将被移除的条目，不写入文件",
	MsgOptionCmd:        "自定义快捷命令名称",
	MsgOptionNoCmd:      "不定义任何快捷命令",
	MsgCmdList:          "列出书签",
	MsgCmdAdd:           "添加路径到书签",
	MsgCmdRemove:        "从书签中移除路径",
	MsgCmdSelect:        "使用 fzf 交互选择书签",
	MsgCmdQuery:         "使用 fzf 根据模式查询书签",
	MsgCmdFix:           "移除已不存在的书签条目",
	MsgCmdClear:         "清空所有书签",
	MsgCmdEdit:          "通过 $EDITOR 编辑书签文件",
	MsgCmdInit:          "生成 zsh / fish 集成脚本",
	MsgCmdExport:        "导出书签为 HTML 书签文件",
	MsgCmdImport:        "从 HTML 书签文件导入 file:// 书签",
	MsgAddedTo:          "已添加到: %s",
	MsgTotalBookmarks:   "当前书签总数: %d",
	MsgRemovedEntries:   "已移除 %d 条记录",
	MsgCleared:          "所有书签已删除！",
	MsgExported:         "已导出 %d 个书签到 %s",
	MsgImported:         "已从 %[2]s 导入 %[1]d 个路径",
	MsgClipboardFailed:  "警告: 无法复制到剪贴板: %v",
	MsgConfigFailed:     "警告: 使用默认配置: %v",
	MsgUnsupportedShell: "不支持的 shell: %s。仅支持 'zsh' 或 'fish'。",
}

func init() {
	for key, msg := range zhHans {
		if err := message.SetString(language.SimplifiedChinese, key, msg); err != nil {
			panic(err)
		}
	}
}
