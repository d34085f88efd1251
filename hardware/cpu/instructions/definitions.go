// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// definitions is the complete list of instructions for all versions. the
// list is ordered by operand count and opcode.
var definitions = []Definition{
	// 2OP
	{Count: TwoOp, OpCode: 0x01, Mnemonic: "je", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x02, Mnemonic: "jl", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x03, Mnemonic: "jg", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x04, Mnemonic: "dec_chk", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x05, Mnemonic: "inc_chk", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x06, Mnemonic: "jin", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x07, Mnemonic: "test", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x08, Mnemonic: "or", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x09, Mnemonic: "and", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x0a, Mnemonic: "test_attr", Branch: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x0b, Mnemonic: "set_attr", MinVersion: 1},
	{Count: TwoOp, OpCode: 0x0c, Mnemonic: "clear_attr", MinVersion: 1},
	{Count: TwoOp, OpCode: 0x0d, Mnemonic: "store", MinVersion: 1},
	{Count: TwoOp, OpCode: 0x0e, Mnemonic: "insert_obj", MinVersion: 1},
	{Count: TwoOp, OpCode: 0x0f, Mnemonic: "loadw", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x10, Mnemonic: "loadb", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x11, Mnemonic: "get_prop", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x12, Mnemonic: "get_prop_addr", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x13, Mnemonic: "get_next_prop", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x14, Mnemonic: "add", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x15, Mnemonic: "sub", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x16, Mnemonic: "mul", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x17, Mnemonic: "div", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x18, Mnemonic: "mod", Store: true, MinVersion: 1},
	{Count: TwoOp, OpCode: 0x19, Mnemonic: "call_2s", Store: true, MinVersion: 4},
	{Count: TwoOp, OpCode: 0x1a, Mnemonic: "call_2n", MinVersion: 5},
	{Count: TwoOp, OpCode: 0x1b, Mnemonic: "set_colour", MinVersion: 5},
	{Count: TwoOp, OpCode: 0x1c, Mnemonic: "throw", MinVersion: 5},

	// 1OP
	{Count: OneOp, OpCode: 0x00, Mnemonic: "jz", Branch: true, MinVersion: 1},
	{Count: OneOp, OpCode: 0x01, Mnemonic: "get_sibling", Store: true, Branch: true, MinVersion: 1},
	{Count: OneOp, OpCode: 0x02, Mnemonic: "get_child", Store: true, Branch: true, MinVersion: 1},
	{Count: OneOp, OpCode: 0x03, Mnemonic: "get_parent", Store: true, MinVersion: 1},
	{Count: OneOp, OpCode: 0x04, Mnemonic: "get_prop_len", Store: true, MinVersion: 1},
	{Count: OneOp, OpCode: 0x05, Mnemonic: "inc", MinVersion: 1},
	{Count: OneOp, OpCode: 0x06, Mnemonic: "dec", MinVersion: 1},
	{Count: OneOp, OpCode: 0x07, Mnemonic: "print_addr", MinVersion: 1},
	{Count: OneOp, OpCode: 0x08, Mnemonic: "call_1s", Store: true, MinVersion: 4},
	{Count: OneOp, OpCode: 0x09, Mnemonic: "remove_obj", MinVersion: 1},
	{Count: OneOp, OpCode: 0x0a, Mnemonic: "print_obj", MinVersion: 1},
	{Count: OneOp, OpCode: 0x0b, Mnemonic: "ret", MinVersion: 1},
	{Count: OneOp, OpCode: 0x0c, Mnemonic: "jump", MinVersion: 1},
	{Count: OneOp, OpCode: 0x0d, Mnemonic: "print_paddr", MinVersion: 1},
	{Count: OneOp, OpCode: 0x0e, Mnemonic: "load", Store: true, MinVersion: 1},
	{Count: OneOp, OpCode: 0x0f, Mnemonic: "not", Store: true, MinVersion: 1, MaxVersion: 4},
	{Count: OneOp, OpCode: 0x0f, Mnemonic: "call_1n", MinVersion: 5},

	// 0OP
	{Count: ZeroOp, OpCode: 0x00, Mnemonic: "rtrue", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x01, Mnemonic: "rfalse", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x02, Mnemonic: "print", Text: true, MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x03, Mnemonic: "print_ret", Text: true, MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x04, Mnemonic: "nop", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x05, Mnemonic: "save", Branch: true, MinVersion: 1, MaxVersion: 3},
	{Count: ZeroOp, OpCode: 0x05, Mnemonic: "save", Store: true, MinVersion: 4, MaxVersion: 4},
	{Count: ZeroOp, OpCode: 0x06, Mnemonic: "restore", Branch: true, MinVersion: 1, MaxVersion: 3},
	{Count: ZeroOp, OpCode: 0x06, Mnemonic: "restore", Store: true, MinVersion: 4, MaxVersion: 4},
	{Count: ZeroOp, OpCode: 0x07, Mnemonic: "restart", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x08, Mnemonic: "ret_popped", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x09, Mnemonic: "pop", MinVersion: 1, MaxVersion: 4},
	{Count: ZeroOp, OpCode: 0x09, Mnemonic: "catch", Store: true, MinVersion: 5},
	{Count: ZeroOp, OpCode: 0x0a, Mnemonic: "quit", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x0b, Mnemonic: "new_line", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x0c, Mnemonic: "show_status", MinVersion: 1},
	{Count: ZeroOp, OpCode: 0x0d, Mnemonic: "verify", Branch: true, MinVersion: 3},
	{Count: ZeroOp, OpCode: 0x0f, Mnemonic: "piracy", Branch: true, MinVersion: 5},

	// VAR
	{Count: Var, OpCode: 0x00, Mnemonic: "call", Store: true, MinVersion: 1, MaxVersion: 3},
	{Count: Var, OpCode: 0x00, Mnemonic: "call_vs", Store: true, MinVersion: 4},
	{Count: Var, OpCode: 0x01, Mnemonic: "storew", MinVersion: 1},
	{Count: Var, OpCode: 0x02, Mnemonic: "storeb", MinVersion: 1},
	{Count: Var, OpCode: 0x03, Mnemonic: "put_prop", MinVersion: 1},
	{Count: Var, OpCode: 0x04, Mnemonic: "sread", MinVersion: 1, MaxVersion: 4},
	{Count: Var, OpCode: 0x04, Mnemonic: "aread", Store: true, MinVersion: 5},
	{Count: Var, OpCode: 0x05, Mnemonic: "print_char", MinVersion: 1},
	{Count: Var, OpCode: 0x06, Mnemonic: "print_num", MinVersion: 1},
	{Count: Var, OpCode: 0x07, Mnemonic: "random", Store: true, MinVersion: 1},
	{Count: Var, OpCode: 0x08, Mnemonic: "push", MinVersion: 1},
	{Count: Var, OpCode: 0x09, Mnemonic: "pull", MinVersion: 1, MaxVersion: 5},
	{Count: Var, OpCode: 0x09, Mnemonic: "pull", Store: true, MinVersion: 6, MaxVersion: 6},
	{Count: Var, OpCode: 0x09, Mnemonic: "pull", MinVersion: 7},
	{Count: Var, OpCode: 0x0a, Mnemonic: "split_window", MinVersion: 3},
	{Count: Var, OpCode: 0x0b, Mnemonic: "set_window", MinVersion: 3},
	{Count: Var, OpCode: 0x0c, Mnemonic: "call_vs2", Store: true, MinVersion: 4, DoubleTypes: true},
	{Count: Var, OpCode: 0x0d, Mnemonic: "erase_window", MinVersion: 4},
	{Count: Var, OpCode: 0x0e, Mnemonic: "erase_line", MinVersion: 4},
	{Count: Var, OpCode: 0x0f, Mnemonic: "set_cursor", MinVersion: 4},
	{Count: Var, OpCode: 0x10, Mnemonic: "get_cursor", MinVersion: 4},
	{Count: Var, OpCode: 0x11, Mnemonic: "set_text_style", MinVersion: 4},
	{Count: Var, OpCode: 0x12, Mnemonic: "buffer_mode", MinVersion: 4},
	{Count: Var, OpCode: 0x13, Mnemonic: "output_stream", MinVersion: 3},
	{Count: Var, OpCode: 0x14, Mnemonic: "input_stream", MinVersion: 3},
	{Count: Var, OpCode: 0x15, Mnemonic: "sound_effect", MinVersion: 3},
	{Count: Var, OpCode: 0x16, Mnemonic: "read_char", Store: true, MinVersion: 4},
	{Count: Var, OpCode: 0x17, Mnemonic: "scan_table", Store: true, Branch: true, MinVersion: 4},
	{Count: Var, OpCode: 0x18, Mnemonic: "not", Store: true, MinVersion: 5},
	{Count: Var, OpCode: 0x19, Mnemonic: "call_vn", MinVersion: 5},
	{Count: Var, OpCode: 0x1a, Mnemonic: "call_vn2", MinVersion: 5, DoubleTypes: true},
	{Count: Var, OpCode: 0x1b, Mnemonic: "tokenise", MinVersion: 5},
	{Count: Var, OpCode: 0x1c, Mnemonic: "encode_text", MinVersion: 5},
	{Count: Var, OpCode: 0x1d, Mnemonic: "copy_table", MinVersion: 5},
	{Count: Var, OpCode: 0x1e, Mnemonic: "print_table", MinVersion: 5},
	{Count: Var, OpCode: 0x1f, Mnemonic: "check_arg_count", Branch: true, MinVersion: 5},

	// EXT
	{Count: Ext, OpCode: 0x00, Mnemonic: "save", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x01, Mnemonic: "restore", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x02, Mnemonic: "log_shift", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x03, Mnemonic: "art_shift", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x04, Mnemonic: "set_font", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x05, Mnemonic: "draw_picture", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x06, Mnemonic: "picture_data", Branch: true, MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x07, Mnemonic: "erase_picture", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x08, Mnemonic: "set_margins", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x09, Mnemonic: "save_undo", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x0a, Mnemonic: "restore_undo", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x0b, Mnemonic: "print_unicode", MinVersion: 5},
	{Count: Ext, OpCode: 0x0c, Mnemonic: "check_unicode", Store: true, MinVersion: 5},
	{Count: Ext, OpCode: 0x0d, Mnemonic: "set_true_colour", MinVersion: 5},
	{Count: Ext, OpCode: 0x10, Mnemonic: "move_window", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x11, Mnemonic: "window_size", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x12, Mnemonic: "window_style", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x13, Mnemonic: "get_wind_prop", Store: true, MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x14, Mnemonic: "scroll_window", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x15, Mnemonic: "pop_stack", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x16, Mnemonic: "read_mouse", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x17, Mnemonic: "mouse_window", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x18, Mnemonic: "push_stack", Branch: true, MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x19, Mnemonic: "put_wind_prop", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x1a, Mnemonic: "print_form", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x1b, Mnemonic: "make_menu", Branch: true, MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x1c, Mnemonic: "picture_table", MinVersion: 6, MaxVersion: 6},
	{Count: Ext, OpCode: 0x1d, Mnemonic: "buffer_screen", Store: true, MinVersion: 6, MaxVersion: 6},
}

// Definitions returns a copy of every instruction definition for every
// version.
func Definitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions)
	return d
}
