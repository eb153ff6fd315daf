package cpu

import "github.com/valerio/go-dotmatrix/dotmatrix/bit"

//NOP
//#0x00:
func opcode0x00(_ *CPU) {
}

//LD BC, nn
//#0x01:
func opcode0x01(cpu *CPU) {
	cpu.setBC(cpu.readImmediateWord())
}

//LD (BC), A
//#0x02:
func opcode0x02(cpu *CPU) {
	cpu.writeByte(cpu.getBC(), cpu.a)
}

//INC BC
//#0x03:
func opcode0x03(cpu *CPU) {
	cpu.setBC(cpu.getBC() + 1)
	cpu.clock(4)
}

//INC B
//#0x04:
func opcode0x04(cpu *CPU) {
	cpu.inc(&cpu.b)
}

//DEC B
//#0x05:
func opcode0x05(cpu *CPU) {
	cpu.dec(&cpu.b)
}

//LD B, n
//#0x06:
func opcode0x06(cpu *CPU) {
	cpu.b = cpu.readImmediate()
}

//RLCA
//#0x07:
func opcode0x07(cpu *CPU) {
	cpu.rlc(&cpu.a)
	cpu.resetFlag(zeroFlag)
}

//LD (nn), SP
//#0x08:
func opcode0x08(cpu *CPU) {
	address := cpu.readImmediateWord()
	cpu.writeByte(address, bit.Low(cpu.sp))
	cpu.writeByte(address+1, bit.High(cpu.sp))
}

//ADD HL, BC
//#0x09:
func opcode0x09(cpu *CPU) {
	cpu.addToHL(cpu.getBC())
}

//LD A, (BC)
//#0x0A:
func opcode0x0A(cpu *CPU) {
	cpu.a = cpu.readByte(cpu.getBC())
}

//DEC BC
//#0x0B:
func opcode0x0B(cpu *CPU) {
	cpu.setBC(cpu.getBC() - 1)
	cpu.clock(4)
}

//INC C
//#0x0C:
func opcode0x0C(cpu *CPU) {
	cpu.inc(&cpu.c)
}

//DEC C
//#0x0D:
func opcode0x0D(cpu *CPU) {
	cpu.dec(&cpu.c)
}

//LD C, n
//#0x0E:
func opcode0x0E(cpu *CPU) {
	cpu.c = cpu.readImmediate()
}

//RRCA
//#0x0F:
func opcode0x0F(cpu *CPU) {
	cpu.rrc(&cpu.a)
	cpu.resetFlag(zeroFlag)
}

//STOP
//#0x10:
func opcode0x10(cpu *CPU) {
	cpu.stop()
}

//LD DE, nn
//#0x11:
func opcode0x11(cpu *CPU) {
	cpu.setDE(cpu.readImmediateWord())
}

//LD (DE), A
//#0x12:
func opcode0x12(cpu *CPU) {
	cpu.writeByte(cpu.getDE(), cpu.a)
}

//INC DE
//#0x13:
func opcode0x13(cpu *CPU) {
	cpu.setDE(cpu.getDE() + 1)
	cpu.clock(4)
}

//INC D
//#0x14:
func opcode0x14(cpu *CPU) {
	cpu.inc(&cpu.d)
}

//DEC D
//#0x15:
func opcode0x15(cpu *CPU) {
	cpu.dec(&cpu.d)
}

//LD D, n
//#0x16:
func opcode0x16(cpu *CPU) {
	cpu.d = cpu.readImmediate()
}

//RLA
//#0x17:
func opcode0x17(cpu *CPU) {
	cpu.rl(&cpu.a)
	cpu.resetFlag(zeroFlag)
}

//JR n
//#0x18:
func opcode0x18(cpu *CPU) {
	cpu.jr(true)
}

//ADD HL, DE
//#0x19:
func opcode0x19(cpu *CPU) {
	cpu.addToHL(cpu.getDE())
}

//LD A, (DE)
//#0x1A:
func opcode0x1A(cpu *CPU) {
	cpu.a = cpu.readByte(cpu.getDE())
}

//DEC DE
//#0x1B:
func opcode0x1B(cpu *CPU) {
	cpu.setDE(cpu.getDE() - 1)
	cpu.clock(4)
}

//INC E
//#0x1C:
func opcode0x1C(cpu *CPU) {
	cpu.inc(&cpu.e)
}

//DEC E
//#0x1D:
func opcode0x1D(cpu *CPU) {
	cpu.dec(&cpu.e)
}

//LD E, n
//#0x1E:
func opcode0x1E(cpu *CPU) {
	cpu.e = cpu.readImmediate()
}

//RRA
//#0x1F:
func opcode0x1F(cpu *CPU) {
	cpu.rr(&cpu.a)
	cpu.resetFlag(zeroFlag)
}

//JR NZ, n
//#0x20:
func opcode0x20(cpu *CPU) {
	cpu.jr(!cpu.isSetFlag(zeroFlag))
}

//LD HL, nn
//#0x21:
func opcode0x21(cpu *CPU) {
	cpu.setHL(cpu.readImmediateWord())
}

//LD (HL+), A
//#0x22:
func opcode0x22(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.a)
	cpu.setHL(cpu.getHL() + 1)
}

//INC HL
//#0x23:
func opcode0x23(cpu *CPU) {
	cpu.setHL(cpu.getHL() + 1)
	cpu.clock(4)
}

//INC H
//#0x24:
func opcode0x24(cpu *CPU) {
	cpu.inc(&cpu.h)
}

//DEC H
//#0x25:
func opcode0x25(cpu *CPU) {
	cpu.dec(&cpu.h)
}

//LD H, n
//#0x26:
func opcode0x26(cpu *CPU) {
	cpu.h = cpu.readImmediate()
}

//DAA
//#0x27:
func opcode0x27(cpu *CPU) {
	cpu.daa()
}

//JR Z, n
//#0x28:
func opcode0x28(cpu *CPU) {
	cpu.jr(cpu.isSetFlag(zeroFlag))
}

//ADD HL, HL
//#0x29:
func opcode0x29(cpu *CPU) {
	cpu.addToHL(cpu.getHL())
}

//LD A, (HL+)
//#0x2A:
func opcode0x2A(cpu *CPU) {
	cpu.a = cpu.readByte(cpu.getHL())
	cpu.setHL(cpu.getHL() + 1)
}

//DEC HL
//#0x2B:
func opcode0x2B(cpu *CPU) {
	cpu.setHL(cpu.getHL() - 1)
	cpu.clock(4)
}

//INC L
//#0x2C:
func opcode0x2C(cpu *CPU) {
	cpu.inc(&cpu.l)
}

//DEC L
//#0x2D:
func opcode0x2D(cpu *CPU) {
	cpu.dec(&cpu.l)
}

//LD L, n
//#0x2E:
func opcode0x2E(cpu *CPU) {
	cpu.l = cpu.readImmediate()
}

//CPL
//#0x2F:
func opcode0x2F(cpu *CPU) {
	cpu.a = ^cpu.a
	cpu.setFlag(subFlag)
	cpu.setFlag(halfCarryFlag)
}

//JR NC, n
//#0x30:
func opcode0x30(cpu *CPU) {
	cpu.jr(!cpu.isSetFlag(carryFlag))
}

//LD SP, nn
//#0x31:
func opcode0x31(cpu *CPU) {
	cpu.sp = cpu.readImmediateWord()
}

//LD (HL-), A
//#0x32:
func opcode0x32(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.a)
	cpu.setHL(cpu.getHL() - 1)
}

//INC SP
//#0x33:
func opcode0x33(cpu *CPU) {
	cpu.sp++
	cpu.clock(4)
}

//INC (HL)
//#0x34:
func opcode0x34(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.inc(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//DEC (HL)
//#0x35:
func opcode0x35(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.dec(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//LD (HL), n
//#0x36:
func opcode0x36(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.readImmediate())
}

//SCF
//#0x37:
func opcode0x37(cpu *CPU) {
	cpu.setFlag(carryFlag)
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
}

//JR C, n
//#0x38:
func opcode0x38(cpu *CPU) {
	cpu.jr(cpu.isSetFlag(carryFlag))
}

//ADD HL, SP
//#0x39:
func opcode0x39(cpu *CPU) {
	cpu.addToHL(cpu.sp)
}

//LD A, (HL-)
//#0x3A:
func opcode0x3A(cpu *CPU) {
	cpu.a = cpu.readByte(cpu.getHL())
	cpu.setHL(cpu.getHL() - 1)
}

//DEC SP
//#0x3B:
func opcode0x3B(cpu *CPU) {
	cpu.sp--
	cpu.clock(4)
}

//INC A
//#0x3C:
func opcode0x3C(cpu *CPU) {
	cpu.inc(&cpu.a)
}

//DEC A
//#0x3D:
func opcode0x3D(cpu *CPU) {
	cpu.dec(&cpu.a)
}

//LD A, n
//#0x3E:
func opcode0x3E(cpu *CPU) {
	cpu.a = cpu.readImmediate()
}

//CCF
//#0x3F:
func opcode0x3F(cpu *CPU) {
	cpu.setFlagToCondition(carryFlag, !cpu.isSetFlag(carryFlag))
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
}

//LD B, B
//#0x40:
func opcode0x40(_ *CPU) {
}

//LD B, C
//#0x41:
func opcode0x41(cpu *CPU) {
	cpu.b = cpu.c
}

//LD B, D
//#0x42:
func opcode0x42(cpu *CPU) {
	cpu.b = cpu.d
}

//LD B, E
//#0x43:
func opcode0x43(cpu *CPU) {
	cpu.b = cpu.e
}

//LD B, H
//#0x44:
func opcode0x44(cpu *CPU) {
	cpu.b = cpu.h
}

//LD B, L
//#0x45:
func opcode0x45(cpu *CPU) {
	cpu.b = cpu.l
}

//LD B, (HL)
//#0x46:
func opcode0x46(cpu *CPU) {
	cpu.b = cpu.readByte(cpu.getHL())
}

//LD B, A
//#0x47:
func opcode0x47(cpu *CPU) {
	cpu.b = cpu.a
}

//LD C, B
//#0x48:
func opcode0x48(cpu *CPU) {
	cpu.c = cpu.b
}

//LD C, C
//#0x49:
func opcode0x49(_ *CPU) {
}

//LD C, D
//#0x4A:
func opcode0x4A(cpu *CPU) {
	cpu.c = cpu.d
}

//LD C, E
//#0x4B:
func opcode0x4B(cpu *CPU) {
	cpu.c = cpu.e
}

//LD C, H
//#0x4C:
func opcode0x4C(cpu *CPU) {
	cpu.c = cpu.h
}

//LD C, L
//#0x4D:
func opcode0x4D(cpu *CPU) {
	cpu.c = cpu.l
}

//LD C, (HL)
//#0x4E:
func opcode0x4E(cpu *CPU) {
	cpu.c = cpu.readByte(cpu.getHL())
}

//LD C, A
//#0x4F:
func opcode0x4F(cpu *CPU) {
	cpu.c = cpu.a
}

//LD D, B
//#0x50:
func opcode0x50(cpu *CPU) {
	cpu.d = cpu.b
}

//LD D, C
//#0x51:
func opcode0x51(cpu *CPU) {
	cpu.d = cpu.c
}

//LD D, D
//#0x52:
func opcode0x52(_ *CPU) {
}

//LD D, E
//#0x53:
func opcode0x53(cpu *CPU) {
	cpu.d = cpu.e
}

//LD D, H
//#0x54:
func opcode0x54(cpu *CPU) {
	cpu.d = cpu.h
}

//LD D, L
//#0x55:
func opcode0x55(cpu *CPU) {
	cpu.d = cpu.l
}

//LD D, (HL)
//#0x56:
func opcode0x56(cpu *CPU) {
	cpu.d = cpu.readByte(cpu.getHL())
}

//LD D, A
//#0x57:
func opcode0x57(cpu *CPU) {
	cpu.d = cpu.a
}

//LD E, B
//#0x58:
func opcode0x58(cpu *CPU) {
	cpu.e = cpu.b
}

//LD E, C
//#0x59:
func opcode0x59(cpu *CPU) {
	cpu.e = cpu.c
}

//LD E, D
//#0x5A:
func opcode0x5A(cpu *CPU) {
	cpu.e = cpu.d
}

//LD E, E
//#0x5B:
func opcode0x5B(_ *CPU) {
}

//LD E, H
//#0x5C:
func opcode0x5C(cpu *CPU) {
	cpu.e = cpu.h
}

//LD E, L
//#0x5D:
func opcode0x5D(cpu *CPU) {
	cpu.e = cpu.l
}

//LD E, (HL)
//#0x5E:
func opcode0x5E(cpu *CPU) {
	cpu.e = cpu.readByte(cpu.getHL())
}

//LD E, A
//#0x5F:
func opcode0x5F(cpu *CPU) {
	cpu.e = cpu.a
}

//LD H, B
//#0x60:
func opcode0x60(cpu *CPU) {
	cpu.h = cpu.b
}

//LD H, C
//#0x61:
func opcode0x61(cpu *CPU) {
	cpu.h = cpu.c
}

//LD H, D
//#0x62:
func opcode0x62(cpu *CPU) {
	cpu.h = cpu.d
}

//LD H, E
//#0x63:
func opcode0x63(cpu *CPU) {
	cpu.h = cpu.e
}

//LD H, H
//#0x64:
func opcode0x64(_ *CPU) {
}

//LD H, L
//#0x65:
func opcode0x65(cpu *CPU) {
	cpu.h = cpu.l
}

//LD H, (HL)
//#0x66:
func opcode0x66(cpu *CPU) {
	cpu.h = cpu.readByte(cpu.getHL())
}

//LD H, A
//#0x67:
func opcode0x67(cpu *CPU) {
	cpu.h = cpu.a
}

//LD L, B
//#0x68:
func opcode0x68(cpu *CPU) {
	cpu.l = cpu.b
}

//LD L, C
//#0x69:
func opcode0x69(cpu *CPU) {
	cpu.l = cpu.c
}

//LD L, D
//#0x6A:
func opcode0x6A(cpu *CPU) {
	cpu.l = cpu.d
}

//LD L, E
//#0x6B:
func opcode0x6B(cpu *CPU) {
	cpu.l = cpu.e
}

//LD L, H
//#0x6C:
func opcode0x6C(cpu *CPU) {
	cpu.l = cpu.h
}

//LD L, L
//#0x6D:
func opcode0x6D(_ *CPU) {
}

//LD L, (HL)
//#0x6E:
func opcode0x6E(cpu *CPU) {
	cpu.l = cpu.readByte(cpu.getHL())
}

//LD L, A
//#0x6F:
func opcode0x6F(cpu *CPU) {
	cpu.l = cpu.a
}

//LD (HL), B
//#0x70:
func opcode0x70(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.b)
}

//LD (HL), C
//#0x71:
func opcode0x71(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.c)
}

//LD (HL), D
//#0x72:
func opcode0x72(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.d)
}

//LD (HL), E
//#0x73:
func opcode0x73(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.e)
}

//LD (HL), H
//#0x74:
func opcode0x74(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.h)
}

//LD (HL), L
//#0x75:
func opcode0x75(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.l)
}

//HALT
//#0x76:
func opcode0x76(cpu *CPU) {
	cpu.halt()
}

//LD (HL), A
//#0x77:
func opcode0x77(cpu *CPU) {
	cpu.writeByte(cpu.getHL(), cpu.a)
}

//LD A, B
//#0x78:
func opcode0x78(cpu *CPU) {
	cpu.a = cpu.b
}

//LD A, C
//#0x79:
func opcode0x79(cpu *CPU) {
	cpu.a = cpu.c
}

//LD A, D
//#0x7A:
func opcode0x7A(cpu *CPU) {
	cpu.a = cpu.d
}

//LD A, E
//#0x7B:
func opcode0x7B(cpu *CPU) {
	cpu.a = cpu.e
}

//LD A, H
//#0x7C:
func opcode0x7C(cpu *CPU) {
	cpu.a = cpu.h
}

//LD A, L
//#0x7D:
func opcode0x7D(cpu *CPU) {
	cpu.a = cpu.l
}

//LD A, (HL)
//#0x7E:
func opcode0x7E(cpu *CPU) {
	cpu.a = cpu.readByte(cpu.getHL())
}

//LD A, A
//#0x7F:
func opcode0x7F(_ *CPU) {
}

//ADD A, B
//#0x80:
func opcode0x80(cpu *CPU) {
	cpu.add(cpu.b)
}

//ADD A, C
//#0x81:
func opcode0x81(cpu *CPU) {
	cpu.add(cpu.c)
}

//ADD A, D
//#0x82:
func opcode0x82(cpu *CPU) {
	cpu.add(cpu.d)
}

//ADD A, E
//#0x83:
func opcode0x83(cpu *CPU) {
	cpu.add(cpu.e)
}

//ADD A, H
//#0x84:
func opcode0x84(cpu *CPU) {
	cpu.add(cpu.h)
}

//ADD A, L
//#0x85:
func opcode0x85(cpu *CPU) {
	cpu.add(cpu.l)
}

//ADD A, (HL)
//#0x86:
func opcode0x86(cpu *CPU) {
	cpu.add(cpu.readByte(cpu.getHL()))
}

//ADD A, A
//#0x87:
func opcode0x87(cpu *CPU) {
	cpu.add(cpu.a)
}

//ADC A, B
//#0x88:
func opcode0x88(cpu *CPU) {
	cpu.adc(cpu.b)
}

//ADC A, C
//#0x89:
func opcode0x89(cpu *CPU) {
	cpu.adc(cpu.c)
}

//ADC A, D
//#0x8A:
func opcode0x8A(cpu *CPU) {
	cpu.adc(cpu.d)
}

//ADC A, E
//#0x8B:
func opcode0x8B(cpu *CPU) {
	cpu.adc(cpu.e)
}

//ADC A, H
//#0x8C:
func opcode0x8C(cpu *CPU) {
	cpu.adc(cpu.h)
}

//ADC A, L
//#0x8D:
func opcode0x8D(cpu *CPU) {
	cpu.adc(cpu.l)
}

//ADC A, (HL)
//#0x8E:
func opcode0x8E(cpu *CPU) {
	cpu.adc(cpu.readByte(cpu.getHL()))
}

//ADC A, A
//#0x8F:
func opcode0x8F(cpu *CPU) {
	cpu.adc(cpu.a)
}

//SUB B
//#0x90:
func opcode0x90(cpu *CPU) {
	cpu.sub(cpu.b)
}

//SUB C
//#0x91:
func opcode0x91(cpu *CPU) {
	cpu.sub(cpu.c)
}

//SUB D
//#0x92:
func opcode0x92(cpu *CPU) {
	cpu.sub(cpu.d)
}

//SUB E
//#0x93:
func opcode0x93(cpu *CPU) {
	cpu.sub(cpu.e)
}

//SUB H
//#0x94:
func opcode0x94(cpu *CPU) {
	cpu.sub(cpu.h)
}

//SUB L
//#0x95:
func opcode0x95(cpu *CPU) {
	cpu.sub(cpu.l)
}

//SUB (HL)
//#0x96:
func opcode0x96(cpu *CPU) {
	cpu.sub(cpu.readByte(cpu.getHL()))
}

//SUB A
//#0x97:
func opcode0x97(cpu *CPU) {
	cpu.sub(cpu.a)
}

//SBC A, B
//#0x98:
func opcode0x98(cpu *CPU) {
	cpu.sbc(cpu.b)
}

//SBC A, C
//#0x99:
func opcode0x99(cpu *CPU) {
	cpu.sbc(cpu.c)
}

//SBC A, D
//#0x9A:
func opcode0x9A(cpu *CPU) {
	cpu.sbc(cpu.d)
}

//SBC A, E
//#0x9B:
func opcode0x9B(cpu *CPU) {
	cpu.sbc(cpu.e)
}

//SBC A, H
//#0x9C:
func opcode0x9C(cpu *CPU) {
	cpu.sbc(cpu.h)
}

//SBC A, L
//#0x9D:
func opcode0x9D(cpu *CPU) {
	cpu.sbc(cpu.l)
}

//SBC A, (HL)
//#0x9E:
func opcode0x9E(cpu *CPU) {
	cpu.sbc(cpu.readByte(cpu.getHL()))
}

//SBC A, A
//#0x9F:
func opcode0x9F(cpu *CPU) {
	cpu.sbc(cpu.a)
}

//AND B
//#0xA0:
func opcode0xA0(cpu *CPU) {
	cpu.and(cpu.b)
}

//AND C
//#0xA1:
func opcode0xA1(cpu *CPU) {
	cpu.and(cpu.c)
}

//AND D
//#0xA2:
func opcode0xA2(cpu *CPU) {
	cpu.and(cpu.d)
}

//AND E
//#0xA3:
func opcode0xA3(cpu *CPU) {
	cpu.and(cpu.e)
}

//AND H
//#0xA4:
func opcode0xA4(cpu *CPU) {
	cpu.and(cpu.h)
}

//AND L
//#0xA5:
func opcode0xA5(cpu *CPU) {
	cpu.and(cpu.l)
}

//AND (HL)
//#0xA6:
func opcode0xA6(cpu *CPU) {
	cpu.and(cpu.readByte(cpu.getHL()))
}

//AND A
//#0xA7:
func opcode0xA7(cpu *CPU) {
	cpu.and(cpu.a)
}

//XOR B
//#0xA8:
func opcode0xA8(cpu *CPU) {
	cpu.xor(cpu.b)
}

//XOR C
//#0xA9:
func opcode0xA9(cpu *CPU) {
	cpu.xor(cpu.c)
}

//XOR D
//#0xAA:
func opcode0xAA(cpu *CPU) {
	cpu.xor(cpu.d)
}

//XOR E
//#0xAB:
func opcode0xAB(cpu *CPU) {
	cpu.xor(cpu.e)
}

//XOR H
//#0xAC:
func opcode0xAC(cpu *CPU) {
	cpu.xor(cpu.h)
}

//XOR L
//#0xAD:
func opcode0xAD(cpu *CPU) {
	cpu.xor(cpu.l)
}

//XOR (HL)
//#0xAE:
func opcode0xAE(cpu *CPU) {
	cpu.xor(cpu.readByte(cpu.getHL()))
}

//XOR A
//#0xAF:
func opcode0xAF(cpu *CPU) {
	cpu.xor(cpu.a)
}

//OR B
//#0xB0:
func opcode0xB0(cpu *CPU) {
	cpu.or(cpu.b)
}

//OR C
//#0xB1:
func opcode0xB1(cpu *CPU) {
	cpu.or(cpu.c)
}

//OR D
//#0xB2:
func opcode0xB2(cpu *CPU) {
	cpu.or(cpu.d)
}

//OR E
//#0xB3:
func opcode0xB3(cpu *CPU) {
	cpu.or(cpu.e)
}

//OR H
//#0xB4:
func opcode0xB4(cpu *CPU) {
	cpu.or(cpu.h)
}

//OR L
//#0xB5:
func opcode0xB5(cpu *CPU) {
	cpu.or(cpu.l)
}

//OR (HL)
//#0xB6:
func opcode0xB6(cpu *CPU) {
	cpu.or(cpu.readByte(cpu.getHL()))
}

//OR A
//#0xB7:
func opcode0xB7(cpu *CPU) {
	cpu.or(cpu.a)
}

//CP B
//#0xB8:
func opcode0xB8(cpu *CPU) {
	cpu.cp(cpu.b)
}

//CP C
//#0xB9:
func opcode0xB9(cpu *CPU) {
	cpu.cp(cpu.c)
}

//CP D
//#0xBA:
func opcode0xBA(cpu *CPU) {
	cpu.cp(cpu.d)
}

//CP E
//#0xBB:
func opcode0xBB(cpu *CPU) {
	cpu.cp(cpu.e)
}

//CP H
//#0xBC:
func opcode0xBC(cpu *CPU) {
	cpu.cp(cpu.h)
}

//CP L
//#0xBD:
func opcode0xBD(cpu *CPU) {
	cpu.cp(cpu.l)
}

//CP (HL)
//#0xBE:
func opcode0xBE(cpu *CPU) {
	cpu.cp(cpu.readByte(cpu.getHL()))
}

//CP A
//#0xBF:
func opcode0xBF(cpu *CPU) {
	cpu.cp(cpu.a)
}

//RET NZ
//#0xC0:
func opcode0xC0(cpu *CPU) {
	cpu.retConditional(!cpu.isSetFlag(zeroFlag))
}

//POP BC
//#0xC1:
func opcode0xC1(cpu *CPU) {
	cpu.setBC(cpu.popStack())
}

//JP NZ, nn
//#0xC2:
func opcode0xC2(cpu *CPU) {
	cpu.jp(!cpu.isSetFlag(zeroFlag))
}

//JP nn
//#0xC3:
func opcode0xC3(cpu *CPU) {
	cpu.jp(true)
}

//CALL NZ, nn
//#0xC4:
func opcode0xC4(cpu *CPU) {
	cpu.call(!cpu.isSetFlag(zeroFlag))
}

//PUSH BC
//#0xC5:
func opcode0xC5(cpu *CPU) {
	cpu.push(cpu.getBC())
}

//ADD A, n
//#0xC6:
func opcode0xC6(cpu *CPU) {
	cpu.add(cpu.readImmediate())
}

//RST 00H
//#0xC7:
func opcode0xC7(cpu *CPU) {
	cpu.rst(0x0000)
}

//RET Z
//#0xC8:
func opcode0xC8(cpu *CPU) {
	cpu.retConditional(cpu.isSetFlag(zeroFlag))
}

//RET
//#0xC9:
func opcode0xC9(cpu *CPU) {
	cpu.ret()
}

//JP Z, nn
//#0xCA:
func opcode0xCA(cpu *CPU) {
	cpu.jp(cpu.isSetFlag(zeroFlag))
}

//CALL Z, nn
//#0xCC:
func opcode0xCC(cpu *CPU) {
	cpu.call(cpu.isSetFlag(zeroFlag))
}

//CALL nn
//#0xCD:
func opcode0xCD(cpu *CPU) {
	cpu.call(true)
}

//ADC A, n
//#0xCE:
func opcode0xCE(cpu *CPU) {
	cpu.adc(cpu.readImmediate())
}

//RST 08H
//#0xCF:
func opcode0xCF(cpu *CPU) {
	cpu.rst(0x0008)
}

//RET NC
//#0xD0:
func opcode0xD0(cpu *CPU) {
	cpu.retConditional(!cpu.isSetFlag(carryFlag))
}

//POP DE
//#0xD1:
func opcode0xD1(cpu *CPU) {
	cpu.setDE(cpu.popStack())
}

//JP NC, nn
//#0xD2:
func opcode0xD2(cpu *CPU) {
	cpu.jp(!cpu.isSetFlag(carryFlag))
}

//CALL NC, nn
//#0xD4:
func opcode0xD4(cpu *CPU) {
	cpu.call(!cpu.isSetFlag(carryFlag))
}

//PUSH DE
//#0xD5:
func opcode0xD5(cpu *CPU) {
	cpu.push(cpu.getDE())
}

//SUB n
//#0xD6:
func opcode0xD6(cpu *CPU) {
	cpu.sub(cpu.readImmediate())
}

//RST 10H
//#0xD7:
func opcode0xD7(cpu *CPU) {
	cpu.rst(0x0010)
}

//RET C
//#0xD8:
func opcode0xD8(cpu *CPU) {
	cpu.retConditional(cpu.isSetFlag(carryFlag))
}

//RETI
//#0xD9:
func opcode0xD9(cpu *CPU) {
	cpu.ret()
	cpu.ime = true
}

//JP C, nn
//#0xDA:
func opcode0xDA(cpu *CPU) {
	cpu.jp(cpu.isSetFlag(carryFlag))
}

//CALL C, nn
//#0xDC:
func opcode0xDC(cpu *CPU) {
	cpu.call(cpu.isSetFlag(carryFlag))
}

//SBC A, n
//#0xDE:
func opcode0xDE(cpu *CPU) {
	cpu.sbc(cpu.readImmediate())
}

//RST 18H
//#0xDF:
func opcode0xDF(cpu *CPU) {
	cpu.rst(0x0018)
}

//LDH (n), A
//#0xE0:
func opcode0xE0(cpu *CPU) {
	cpu.writeByte(0xFF00 + uint16(cpu.readImmediate()), cpu.a)
}

//POP HL
//#0xE1:
func opcode0xE1(cpu *CPU) {
	cpu.setHL(cpu.popStack())
}

//LD (C), A
//#0xE2:
func opcode0xE2(cpu *CPU) {
	cpu.writeByte(0xFF00 + uint16(cpu.c), cpu.a)
}

//PUSH HL
//#0xE5:
func opcode0xE5(cpu *CPU) {
	cpu.push(cpu.getHL())
}

//AND n
//#0xE6:
func opcode0xE6(cpu *CPU) {
	cpu.and(cpu.readImmediate())
}

//RST 20H
//#0xE7:
func opcode0xE7(cpu *CPU) {
	cpu.rst(0x0020)
}

//ADD SP, n
//#0xE8:
func opcode0xE8(cpu *CPU) {
	cpu.sp = cpu.addSignedToSP()
	cpu.clock(8)
}

//JP (HL)
//#0xE9:
func opcode0xE9(cpu *CPU) {
	cpu.pc = cpu.getHL()
}

//LD (nn), A
//#0xEA:
func opcode0xEA(cpu *CPU) {
	cpu.writeByte(cpu.readImmediateWord(), cpu.a)
}

//XOR n
//#0xEE:
func opcode0xEE(cpu *CPU) {
	cpu.xor(cpu.readImmediate())
}

//RST 28H
//#0xEF:
func opcode0xEF(cpu *CPU) {
	cpu.rst(0x0028)
}

//LDH A, (n)
//#0xF0:
func opcode0xF0(cpu *CPU) {
	cpu.a = cpu.readByte(0xFF00 + uint16(cpu.readImmediate()))
}

//POP AF
//#0xF1:
func opcode0xF1(cpu *CPU) {
	cpu.setAF(cpu.popStack())
}

//LD A, (C)
//#0xF2:
func opcode0xF2(cpu *CPU) {
	cpu.a = cpu.readByte(0xFF00 + uint16(cpu.c))
}

//DI
//#0xF3:
func opcode0xF3(cpu *CPU) {
	cpu.di()
}

//PUSH AF
//#0xF5:
func opcode0xF5(cpu *CPU) {
	cpu.push(cpu.getAF())
}

//OR n
//#0xF6:
func opcode0xF6(cpu *CPU) {
	cpu.or(cpu.readImmediate())
}

//RST 30H
//#0xF7:
func opcode0xF7(cpu *CPU) {
	cpu.rst(0x0030)
}

//LD HL, SP+n
//#0xF8:
func opcode0xF8(cpu *CPU) {
	cpu.setHL(cpu.addSignedToSP())
	cpu.clock(4)
}

//LD SP, HL
//#0xF9:
func opcode0xF9(cpu *CPU) {
	cpu.sp = cpu.getHL()
	cpu.clock(4)
}

//LD A, (nn)
//#0xFA:
func opcode0xFA(cpu *CPU) {
	cpu.a = cpu.readByte(cpu.readImmediateWord())
}

//EI
//#0xFB:
func opcode0xFB(cpu *CPU) {
	cpu.ei()
}

//CP n
//#0xFE:
func opcode0xFE(cpu *CPU) {
	cpu.cp(cpu.readImmediate())
}

//RST 38H
//#0xFF:
func opcode0xFF(cpu *CPU) {
	cpu.rst(0x0038)
}
