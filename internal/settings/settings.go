package settings

const CmdName = "stackmark"
